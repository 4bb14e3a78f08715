package dispatch

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oggyb/beem-sms/sms"
)

func TestNew(t *testing.T) {
	res := sms.SendResult{
		Success:      true,
		StatusCode:   200,
		Message:      "SMS sent successfully",
		ResponseBody: map[string]any{"request_id": "abc"},
		RequestID:    "abc",
	}

	d := New("INFO", 3, "habari ü", sms.Unicode, res)

	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Nil(t, d.BulkID)
	assert.Equal(t, 0, d.Batch)
	assert.Equal(t, 3, d.Recipients)
	assert.Equal(t, 8, d.MessageLength)
	assert.Equal(t, sms.Unicode, d.Encoding)
	assert.True(t, d.Success)
	assert.Equal(t, "abc", d.RequestID)
	assert.JSONEq(t, `{"request_id":"abc"}`, d.RawResponse)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestNew_EmptyBodyHasNoRawResponse(t *testing.T) {
	d := New("INFO", 1, "hi", sms.PlainText, sms.SendResult{StatusCode: 500, ResponseBody: map[string]any{}})
	assert.Empty(t, d.RawResponse)
}

func TestFailedInBulk(t *testing.T) {
	bulk := uuid.New()

	d := Failed("INFO", 100, "hi", sms.PlainText, errors.New("boom")).InBulk(bulk, 2)

	assert.False(t, d.Success)
	assert.Equal(t, 0, d.StatusCode)
	assert.Equal(t, "boom", d.ResultMessage)
	assert.Equal(t, &bulk, d.BulkID)
	assert.Equal(t, 2, d.Batch)
}
