package request

import (
	"bytes"
	"encoding/json"
)

// Destinations is a list of phone numbers that also accepts a single JSON string.
type Destinations []string

// UnmarshalJSON accepts either "0712345678" or ["0712345678", ...].
func (d *Destinations) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '"' {
		var one string
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*d = Destinations{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*d = many
	return nil
}

// SendRequest represents the JSON body for a single send.
type SendRequest struct {
	// SourceAddr is the sender id. Empty uses the configured default.
	SourceAddr string `json:"source_addr" example:"INFO"`
	// DestAddr is one phone number or a list of them.
	DestAddr Destinations `json:"dest_addr" swaggertype:"array,string" example:"0712345678"`
	Message  string       `json:"message" example:"Hello from Beem"`
	// Encoding is 0 (plain text, 160 chars) or 8 (unicode, 70 chars).
	Encoding int `json:"encoding" example:"0"`
}

// BulkRequest represents the JSON body for a bulk send.
type BulkRequest struct {
	SendRequest
	// BatchSize is the number of recipients per gateway request. Zero uses the configured default.
	BatchSize int `json:"batch_size" example:"100"`
}
