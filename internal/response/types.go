package response

import (
	"time"

	domain "github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/sms"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// SendResultDTO is the public-facing representation of one gateway round trip.
type SendResultDTO struct {
	Success      bool           `json:"success"`
	StatusCode   int            `json:"statusCode"`
	Message      string         `json:"message"`
	RequestID    string         `json:"requestId,omitempty"`
	ResponseBody map[string]any `json:"responseBody,omitempty"`
}

type SendResponse struct {
	Success   bool          `json:"success"`
	Data      SendResultDTO `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type BulkPayload struct {
	Batches   int             `json:"batches"`
	Succeeded int             `json:"succeeded"`
	Results   []SendResultDTO `json:"results"`
}

type BulkResponse struct {
	Success   bool        `json:"success"`
	Data      BulkPayload `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// DispatchDTO is a public-facing representation of a recorded dispatch
// used in API responses. It decouples the wire format from the domain
// entity and plays nicely with Swagger.
type DispatchDTO struct {
	ID            string    `json:"id"`
	BulkID        string    `json:"bulkId,omitempty"`
	Batch         int       `json:"batch,omitempty"`
	SourceAddr    string    `json:"sourceAddr"`
	Recipients    int       `json:"recipients"`
	Encoding      int       `json:"encoding"`
	MessageLength int       `json:"messageLength"`
	Success       bool      `json:"success"`
	StatusCode    int       `json:"statusCode"`
	Message       string    `json:"message"`
	RequestID     string    `json:"requestId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DispatchResponse struct {
	Success   bool        `json:"success"`
	Data      DispatchDTO `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type HistoryPayload struct {
	Items []DispatchDTO `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type HistoryResponse struct {
	Success   bool           `json:"success"`
	Data      HistoryPayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type StatsPayload struct {
	Date string `json:"date"`
	Sent int64  `json:"sent"`
}

type StatsResponse struct {
	Success   bool         `json:"success"`
	Data      StatsPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

// FromSendResult converts a client result into its DTO.
func FromSendResult(r sms.SendResult) SendResultDTO {
	return SendResultDTO{
		Success:      r.Success,
		StatusCode:   r.StatusCode,
		Message:      r.Message,
		RequestID:    r.RequestID,
		ResponseBody: r.ResponseBody,
	}
}

// FromSendResults converts bulk results and counts the successful batches.
func FromSendResults(results []sms.SendResult) BulkPayload {
	out := BulkPayload{Batches: len(results), Results: make([]SendResultDTO, len(results))}
	for i, r := range results {
		out.Results[i] = FromSendResult(r)
		if r.Success {
			out.Succeeded++
		}
	}
	return out
}

// FromDispatch converts a domain dispatch into its DTO.
func FromDispatch(d *domain.Dispatch) DispatchDTO {
	dto := DispatchDTO{
		ID:            d.ID.String(),
		Batch:         d.Batch,
		SourceAddr:    d.SourceAddr,
		Recipients:    d.Recipients,
		Encoding:      int(d.Encoding),
		MessageLength: d.MessageLength,
		Success:       d.Success,
		StatusCode:    d.StatusCode,
		Message:       d.ResultMessage,
		RequestID:     d.RequestID,
		CreatedAt:     d.CreatedAt,
	}
	if d.BulkID != nil {
		dto.BulkID = d.BulkID.String()
	}
	return dto
}

// FromDispatches converts domain dispatches into DTOs
// for use in HTTP responses.
func FromDispatches(ds []*domain.Dispatch) []DispatchDTO {
	out := make([]DispatchDTO, len(ds))
	for i, d := range ds {
		out[i] = FromDispatch(d)
	}
	return out
}
