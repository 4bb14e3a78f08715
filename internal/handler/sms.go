package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/internal/request"
	"github.com/oggyb/beem-sms/internal/response"
	"github.com/oggyb/beem-sms/internal/service"
	"github.com/oggyb/beem-sms/sms"
)

// SMSHandler wires HTTP endpoints to the dispatch service.
type SMSHandler struct {
	svc service.DispatchService
}

// NewSMSHandler constructs a new SMSHandler with its dependencies.
func NewSMSHandler(svc service.DispatchService) *SMSHandler {
	return &SMSHandler{svc: svc}
}

// Send godoc
// @Summary     Send SMS
// @Description Sends one message to every recipient in a single gateway request.
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       request body request.SendRequest true "Message and recipients"
// @Success     200 {object} response.SendResponse
// @Failure     400 {object} map[string]string
// @Failure     502 {object} map[string]string
// @Failure     504 {object} map[string]string
// @Router      /sms/send [post]
func (h *SMSHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.svc.Send(r.Context(), toSendInput(req))
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromSendResult(res))
}

// SendBulk godoc
// @Summary     Send bulk SMS
// @Description Splits recipients into batches and sends each batch in turn. One result per batch.
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       request body request.BulkRequest true "Message, recipients and batch size"
// @Success     200 {object} response.BulkResponse
// @Failure     400 {object} map[string]string
// @Router      /sms/bulk [post]
func (h *SMSHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req request.BulkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	results, err := h.svc.SendBulk(r.Context(), service.BulkInput{
		SendInput: toSendInput(req.SendRequest),
		BatchSize: req.BatchSize,
	})
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromSendResults(results))
}

// History godoc
// @Summary     List dispatches
// @Description Returns a paginated list of recorded gateway requests, newest first.
// @Tags        sms
// @Produce     json
// @Param       page  query int false "Page number"         default(1)
// @Param       limit query int false "Page size (max 100)" default(20)
// @Success     200 {object} response.HistoryResponse
// @Failure     500 {object} map[string]string
// @Router      /sms/history [get]
func (h *SMSHandler) History(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page := 1
	limit := 20

	if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	items, total, err := h.svc.History(r.Context(), page, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := response.HistoryPayload{
		Items: response.FromDispatches(items),
		Total: total,
		Page:  page,
		Limit: limit,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// GetByRequestID godoc
// @Summary     Look up a dispatch
// @Description Returns the dispatch recorded for a gateway request id.
// @Tags        sms
// @Produce     json
// @Param       requestId path string true "Gateway request id"
// @Success     200 {object} response.DispatchResponse
// @Failure     404 {object} map[string]string
// @Router      /sms/requests/{requestId} [get]
func (h *SMSHandler) GetByRequestID(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.FindByRequestID(r.Context(), r.PathValue("requestId"))
	if err != nil {
		response.RespondError(w, statusFor(err), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromDispatch(d))
}

// Stats godoc
// @Summary     Daily sent count
// @Description Returns the number of successful gateway requests on a day (UTC).
// @Tags        sms
// @Produce     json
// @Param       date query string false "Day as YYYY-MM-DD, defaults to today"
// @Success     200 {object} response.StatsResponse
// @Failure     400 {object} map[string]string
// @Router      /sms/stats [get]
func (h *SMSHandler) Stats(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	n, err := h.svc.SentOn(r.Context(), day)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.StatsPayload{
		Date: day.Format(time.DateOnly),
		Sent: n,
	})
}

func toSendInput(req request.SendRequest) service.SendInput {
	return service.SendInput{
		SourceAddr: req.SourceAddr,
		DestAddrs:  req.DestAddr,
		Message:    req.Message,
		Encoding:   sms.Encoding(req.Encoding),
	}
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sms.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, dispatch.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sms.ErrAuthentication), errors.Is(err, sms.ErrAPI):
		return http.StatusBadGateway
	case errors.Is(err, sms.ErrNetwork):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
