package dispatchgorm

import (
	"github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/sms"
)

func toDomain(m *DispatchModel) *dispatch.Dispatch {
	return &dispatch.Dispatch{
		ID:            m.ID,
		BulkID:        m.BulkID,
		Batch:         m.Batch,
		SourceAddr:    m.SourceAddr,
		Recipients:    m.Recipients,
		Encoding:      sms.Encoding(m.Encoding),
		MessageLength: m.MessageLength,
		Success:       m.Success,
		StatusCode:    m.StatusCode,
		ResultMessage: m.ResultMessage,
		RequestID:     m.RequestID,
		RawResponse:   m.RawResponse,
		CreatedAt:     m.CreatedAt,
	}
}

func toDomainMany(models []DispatchModel) []*dispatch.Dispatch {
	out := make([]*dispatch.Dispatch, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

func fromDomain(d *dispatch.Dispatch) *DispatchModel {
	return &DispatchModel{
		ID:            d.ID,
		BulkID:        d.BulkID,
		Batch:         d.Batch,
		SourceAddr:    d.SourceAddr,
		Recipients:    d.Recipients,
		Encoding:      int(d.Encoding),
		MessageLength: d.MessageLength,
		Success:       d.Success,
		StatusCode:    d.StatusCode,
		ResultMessage: d.ResultMessage,
		RequestID:     d.RequestID,
		RawResponse:   d.RawResponse,
		CreatedAt:     d.CreatedAt,
	}
}
