package sms

import (
	"github.com/cespare/xxhash/v2"

	"github.com/oggyb/beem-sms/phone"
)

// Encoding is the message character set. Its numeric value is sent to the gateway.
type Encoding int

const (
	PlainText Encoding = 0
	Unicode   Encoding = 8
)

const (
	// MaxPlainTextLength is the per-message ceiling for PlainText.
	MaxPlainTextLength = 160
	// MaxUnicodeLength is the per-message ceiling for Unicode.
	MaxUnicodeLength = 70
)

// MaxLength returns the character ceiling for a single message in this encoding.
func (e Encoding) MaxLength() int {
	if e == Unicode {
		return MaxUnicodeLength
	}
	return MaxPlainTextLength
}

func (e Encoding) String() string {
	switch e {
	case PlainText:
		return "plain_text"
	case Unicode:
		return "unicode"
	default:
		return "unknown"
	}
}

const (
	// recipientIDSeed seeds the xxhash64 digest used for derived recipient ids.
	recipientIDSeed uint64 = 0x6265656d // "beem"
	// recipientIDSpace bounds derived ids to 1..recipientIDSpace-1.
	recipientIDSpace = 10000
)

// Recipient is one destination in a send request.
type Recipient struct {
	DestAddr    string
	RecipientID int
}

// NewRecipient builds a recipient with a derived id.
func NewRecipient(destAddr string) Recipient {
	return Recipient{DestAddr: destAddr, RecipientID: DeriveRecipientID(destAddr)}
}

// NewRecipientWithID builds a recipient with a caller supplied id. A zero or
// negative id falls back to the derived one.
func NewRecipientWithID(destAddr string, id int) Recipient {
	if id <= 0 {
		return NewRecipient(destAddr)
	}
	return Recipient{DestAddr: destAddr, RecipientID: id}
}

// NewRecipients builds one recipient per address, in order.
func NewRecipients(destAddrs ...string) []Recipient {
	out := make([]Recipient, len(destAddrs))
	for i, addr := range destAddrs {
		out[i] = NewRecipient(addr)
	}
	return out
}

// DeriveRecipientID returns a stable id in [1, 9999] computed as
// 1 + xxhash64(seed, phone.Clean(destAddr)) mod 9999.
//
// Ids are a convenience for correlating gateway reports and are not
// collision free: two addresses can share an id.
func DeriveRecipientID(destAddr string) int {
	d := xxhash.NewWithSeed(recipientIDSeed)
	_, _ = d.WriteString(phone.Clean(destAddr))
	return 1 + int(d.Sum64()%(recipientIDSpace-1))
}

// SendResult is the outcome of one gateway round trip. Success implies
// StatusCode 200.
type SendResult struct {
	Success      bool           `json:"success"`
	StatusCode   int            `json:"status_code"`
	Message      string         `json:"message"`
	ResponseBody map[string]any `json:"response_body,omitempty"`
	RequestID    string         `json:"request_id,omitempty"`
}

// payload is the JSON body accepted by the gateway.
type payload struct {
	SourceAddr string             `json:"source_addr"`
	Encoding   int                `json:"encoding"`
	Message    string             `json:"message"`
	Recipients []payloadRecipient `json:"recipients"`
}

type payloadRecipient struct {
	RecipientID int    `json:"recipient_id"`
	DestAddr    string `json:"dest_addr"`
}

func buildPayload(sourceAddr, message string, recipients []Recipient, enc Encoding) payload {
	p := payload{
		SourceAddr: sourceAddr,
		Encoding:   int(enc),
		Message:    message,
		Recipients: make([]payloadRecipient, len(recipients)),
	}
	for i, r := range recipients {
		p.Recipients[i] = payloadRecipient{
			RecipientID: r.RecipientID,
			DestAddr:    phone.Clean(r.DestAddr),
		}
	}
	return p
}
