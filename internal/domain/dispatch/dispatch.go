// Package dispatch holds the domain model for recorded gateway dispatches.
package dispatch

import (
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/oggyb/beem-sms/sms"
)

// ErrNotFound is returned when no dispatch matches a lookup.
var ErrNotFound = errors.New("dispatch not found")

// Dispatch is one gateway round trip (a single send or one bulk batch) and its outcome.
type Dispatch struct {
	ID            uuid.UUID
	BulkID        *uuid.UUID // shared by every batch of one bulk send
	Batch         int        // 1-based batch number; 0 for single sends
	SourceAddr    string
	Recipients    int
	Encoding      sms.Encoding
	MessageLength int
	Success       bool
	StatusCode    int
	ResultMessage string
	RequestID     string
	RawResponse   string
	CreatedAt     time.Time
}

// New records the outcome of sending message from sourceAddr to recipients addresses.
func New(sourceAddr string, recipients int, message string, enc sms.Encoding, res sms.SendResult) *Dispatch {
	d := &Dispatch{
		ID:            uuid.New(),
		SourceAddr:    sourceAddr,
		Recipients:    recipients,
		Encoding:      enc,
		MessageLength: utf8.RuneCountInString(message),
		Success:       res.Success,
		StatusCode:    res.StatusCode,
		ResultMessage: res.Message,
		RequestID:     res.RequestID,
		CreatedAt:     time.Now(),
	}
	if len(res.ResponseBody) > 0 {
		if raw, err := json.Marshal(res.ResponseBody); err == nil {
			d.RawResponse = string(raw)
		}
	}
	return d
}

// Failed records a send that ended with an error instead of a result.
func Failed(sourceAddr string, recipients int, message string, enc sms.Encoding, err error) *Dispatch {
	return New(sourceAddr, recipients, message, enc, sms.SendResult{Message: err.Error()})
}

// InBulk tags the dispatch as batch n of the bulk send bulkID.
func (d *Dispatch) InBulk(bulkID uuid.UUID, n int) *Dispatch {
	d.BulkID = &bulkID
	d.Batch = n
	return d
}
