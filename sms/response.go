package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	msgSent           = "SMS sent successfully"
	msgAuthFailed     = "Authentication failed. Check your API credentials."
	msgRateLimited    = "Rate limit exceeded. Please try again later."
	msgRequestFailedF = "API request failed. Status: %d"
)

// parseBody decodes raw as a JSON object. Empty, non-JSON or non-object
// bodies yield an empty map and ok=false; it never returns an error.
func parseBody(raw []byte) (body map[string]any, ok bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil || out == nil {
		return map[string]any{}, false
	}
	return out, true
}

// requestID prefers the body's request_id and falls back to the X-Request-ID header.
func requestID(body map[string]any, header http.Header) string {
	switch v := body["request_id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case json.Number:
		return v.String()
	}
	return header.Get("X-Request-ID")
}

// classify maps a gateway response onto a SendResult or an error.
func (c *Client) classify(status int, header http.Header, raw []byte) (SendResult, error) {
	body, _ := parseBody(raw)
	reqID := requestID(body, header)

	switch status {
	case http.StatusOK:
		c.log.WithField("request_id", reqID).Info("SMS sent successfully")
		return SendResult{
			Success:      true,
			StatusCode:   status,
			Message:      msgSent,
			ResponseBody: body,
			RequestID:    reqID,
		}, nil

	case http.StatusUnauthorized:
		c.log.WithField("status", status).Error(msgAuthFailed)
		return SendResult{}, newError(ErrAuthentication, msgAuthFailed)

	case http.StatusTooManyRequests:
		c.log.WithField("status", status).Warn(msgRateLimited)
		return SendResult{}, newError(ErrAPI, msgRateLimited)
	}

	msg := fmt.Sprintf(msgRequestFailedF, status)
	c.log.WithFields(logrus.Fields{
		"status":   status,
		"response": strings.TrimSpace(string(raw)),
	}).Error(msg)

	return SendResult{
		Success:      false,
		StatusCode:   status,
		Message:      msg,
		ResponseBody: body,
		RequestID:    reqID,
	}, nil
}
