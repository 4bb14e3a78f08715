package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/internal/service"
	"github.com/oggyb/beem-sms/sms"
)

type fakeService struct {
	sendRes sms.SendResult
	bulkRes []sms.SendResult
	err     error
	found   *dispatch.Dispatch
	sent    int64

	lastSend  service.SendInput
	lastBulk  service.BulkInput
	lastPage  int
	lastLimit int
	lastDay   time.Time
}

func (f *fakeService) Send(_ context.Context, in service.SendInput) (sms.SendResult, error) {
	f.lastSend = in
	return f.sendRes, f.err
}

func (f *fakeService) SendBulk(_ context.Context, in service.BulkInput) ([]sms.SendResult, error) {
	f.lastBulk = in
	return f.bulkRes, f.err
}

func (f *fakeService) History(_ context.Context, page, limit int) ([]*dispatch.Dispatch, int64, error) {
	f.lastPage, f.lastLimit = page, limit
	if f.found == nil {
		return nil, 0, f.err
	}
	return []*dispatch.Dispatch{f.found}, 1, f.err
}

func (f *fakeService) FindByRequestID(_ context.Context, _ string) (*dispatch.Dispatch, error) {
	if f.found == nil {
		return nil, dispatch.ErrNotFound
	}
	return f.found, nil
}

func (f *fakeService) SentOn(_ context.Context, day time.Time) (int64, error) {
	f.lastDay = day
	return f.sent, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func serve(t *testing.T, h http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(method+" "+strings.SplitN(target, "?", 2)[0], h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestSend_OK(t *testing.T) {
	svc := &fakeService{sendRes: sms.SendResult{Success: true, StatusCode: 200, Message: "SMS sent successfully", RequestID: "r-1"}}
	h := NewSMSHandler(svc)

	rec, env := serve(t, h.Send, http.MethodPost, "/sms/send",
		`{"source_addr":"INFO","dest_addr":["0712345678"],"message":"hi","encoding":8}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"requestId":"r-1"`)
	assert.Equal(t, "INFO", svc.lastSend.SourceAddr)
	assert.Equal(t, []string{"0712345678"}, svc.lastSend.DestAddrs)
	assert.Equal(t, sms.Unicode, svc.lastSend.Encoding)
}

func TestSend_SingleDestinationString(t *testing.T) {
	svc := &fakeService{sendRes: sms.SendResult{Success: true, StatusCode: 200}}
	h := NewSMSHandler(svc)

	rec, _ := serve(t, h.Send, http.MethodPost, "/sms/send", `{"dest_addr":"0712345678","message":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"0712345678"}, svc.lastSend.DestAddrs)
}

func TestSend_InvalidJSON(t *testing.T) {
	h := NewSMSHandler(&fakeService{})

	rec, env := serve(t, h.Send, http.MethodPost, "/sms/send", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestSend_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", &sms.Error{Kind: sms.ErrValidation, Message: "Message cannot be empty"}, http.StatusBadRequest},
		{"Authentication", &sms.Error{Kind: sms.ErrAuthentication, Message: "Authentication failed"}, http.StatusBadGateway},
		{"API", &sms.Error{Kind: sms.ErrAPI, Message: "Rate limit exceeded"}, http.StatusBadGateway},
		{"Network", &sms.Error{Kind: sms.ErrNetwork, Message: "Request timeout"}, http.StatusGatewayTimeout},
		{"Other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewSMSHandler(&fakeService{err: tc.err})

			rec, env := serve(t, h.Send, http.MethodPost, "/sms/send", `{"dest_addr":["0712345678"],"message":"hi"}`)

			assert.Equal(t, tc.want, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.err.Error(), env.Error.Message)
		})
	}
}

func TestSendBulk(t *testing.T) {
	svc := &fakeService{bulkRes: []sms.SendResult{
		{Success: true, StatusCode: 200},
		{Success: false, Message: "Batch 2 failed: boom"},
	}}
	h := NewSMSHandler(svc)

	rec, env := serve(t, h.SendBulk, http.MethodPost, "/sms/bulk",
		`{"dest_addr":["0712345678","0612345678"],"message":"hi","batch_size":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.lastBulk.BatchSize)

	var payload struct {
		Batches   int `json:"batches"`
		Succeeded int `json:"succeeded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 2, payload.Batches)
	assert.Equal(t, 1, payload.Succeeded)
}

func TestHistory_Pagination(t *testing.T) {
	svc := &fakeService{}
	h := NewSMSHandler(svc)

	rec, _ := serve(t, h.History, http.MethodGet, "/sms/history?page=3&limit=500", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastPage)
	assert.Equal(t, 20, svc.lastLimit, "out of range limit falls back to the default")

	serve(t, h.History, http.MethodGet, "/sms/history?page=-1&limit=50", "")
	assert.Equal(t, 1, svc.lastPage)
	assert.Equal(t, 50, svc.lastLimit)
}

func TestGetByRequestID(t *testing.T) {
	d := dispatch.New("INFO", 1, "hi", sms.PlainText, sms.SendResult{Success: true, StatusCode: 200, RequestID: "r-9"})

	mux := http.NewServeMux()
	h := NewSMSHandler(&fakeService{found: d})
	mux.HandleFunc("GET /sms/requests/{requestId}", h.GetByRequestID)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sms/requests/r-9", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), d.ID.String())

	mux = http.NewServeMux()
	h = NewSMSHandler(&fakeService{})
	mux.HandleFunc("GET /sms/requests/{requestId}", h.GetByRequestID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sms/requests/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	svc := &fakeService{sent: 42}
	h := NewSMSHandler(svc)

	rec, env := serve(t, h.Stats, http.MethodGet, "/sms/stats?date=2024-05-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-05-01","sent":42}`, string(env.Data))
	assert.Equal(t, "2024-05-01", svc.lastDay.Format(time.DateOnly))

	rec, _ = serve(t, h.Stats, http.MethodGet, "/sms/stats?date=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
