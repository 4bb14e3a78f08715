package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/oggyb/beem-sms/phone"
)

const (
	// DefaultBaseURL is the gateway's send endpoint.
	DefaultBaseURL = "https://apisms.beem.africa/v1/send"
	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is how many times the transport retries 429/5xx and connection failures.
	DefaultMaxRetries = 3
	// DefaultBackoff is the first wait between retries; later waits double.
	DefaultBackoff = time.Second
	// DefaultBatchSize is the bulk batch size used by callers that have no preference.
	DefaultBatchSize = 100
	// DefaultBatchPause is the pause between consecutive bulk batches.
	DefaultBatchPause = 100 * time.Millisecond
)

var _ Sender = (*Client)(nil)

// Client sends SMS through the Beem gateway.
//
// A Client holds a pooled HTTP transport for its whole lifetime and must be
// released with Close. Send, SendRecipients and SendBulk may be called from
// multiple goroutines; Close may race with in-flight sends, which finish on
// their own connections while new sends fail.
type Client struct {
	apiKey     string
	secretKey  string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	batchPause time.Duration

	http   *retryablehttp.Client
	log    logrus.FieldLogger
	closed atomic.Bool
}

type options struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	batchPause time.Duration
	logger     logrus.FieldLogger
}

// Option customizes a Client at construction time.
type Option func(*options)

// WithBaseURL overrides the gateway endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxRetries sets how many times the transport retries a request.
func WithMaxRetries(n int) Option {
	return func(o *options) { o.maxRetries = n }
}

// WithBackoff sets the first retry wait. Subsequent waits double.
func WithBackoff(d time.Duration) Option {
	return func(o *options) { o.backoff = d }
}

// WithBatchPause sets the pause between bulk batches.
func WithBatchPause(d time.Duration) Option {
	return func(o *options) { o.batchPause = d }
}

// WithLogger sets the logger used for client events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// NewClient validates credentials and settings and builds a ready Client.
func NewClient(apiKey, secretKey string, opts ...Option) (*Client, error) {
	if apiKey == "" || secretKey == "" {
		return nil, newError(ErrConfiguration, "API key and secret key are required")
	}

	o := options{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		backoff:    DefaultBackoff,
		batchPause: DefaultBatchPause,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.baseURL == "" {
		o.baseURL = DefaultBaseURL
	}
	u, err := url.Parse(o.baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, wrapError(ErrConfiguration, fmt.Sprintf("invalid base URL %q", o.baseURL), err)
	}
	if o.timeout <= 0 {
		return nil, newError(ErrConfiguration, "timeout must be positive")
	}
	if o.maxRetries < 0 {
		return nil, newError(ErrConfiguration, "max retries cannot be negative")
	}
	if o.backoff < 0 || o.batchPause < 0 {
		return nil, newError(ErrConfiguration, "backoff and batch pause cannot be negative")
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger().WithField("component", "beem-sms")
	}

	c := &Client{
		apiKey:     apiKey,
		secretKey:  secretKey,
		baseURL:    o.baseURL,
		timeout:    o.timeout,
		maxRetries: o.maxRetries,
		batchPause: o.batchPause,
		http:       newTransport(o.timeout, o.maxRetries, o.backoff, o.logger),
		log:        o.logger,
	}

	c.log.WithFields(logrus.Fields{
		"base_url":    c.baseURL,
		"timeout":     c.timeout,
		"max_retries": c.maxRetries,
	}).Info("Beem SMS client initialized")

	return c, nil
}

// Close releases pooled connections. Sends after Close fail with ErrConfiguration.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.http.HTTPClient.CloseIdleConnections()
	c.log.Debug("Beem SMS client closed")
	return nil
}

// Send dispatches message to every address in destAddrs in a single request.
// Recipient ids are derived from the addresses.
func (c *Client) Send(ctx context.Context, sourceAddr string, destAddrs []string, message string, enc Encoding) (SendResult, error) {
	return c.SendRecipients(ctx, sourceAddr, NewRecipients(destAddrs...), message, enc)
}

// SendRecipients dispatches message to explicit recipient records in a single request.
//
// Validation failures return ErrValidation without touching the network. A
// 401 returns ErrAuthentication, a 429 (after transport retries) returns
// ErrAPI, and any other non-200 status is reported as an unsuccessful
// SendResult rather than an error.
func (c *Client) SendRecipients(ctx context.Context, sourceAddr string, recipients []Recipient, message string, enc Encoding) (SendResult, error) {
	if c.closed.Load() {
		return SendResult{}, c.fail(newError(ErrConfiguration, "client is closed"))
	}

	start := time.Now()

	if err := validateMessage(message, enc); err != nil {
		return SendResult{}, c.fail(err)
	}
	if err := validateRecipients(recipients); err != nil {
		return SendResult{}, c.fail(err)
	}
	if sourceAddr == "" {
		return SendResult{}, c.fail(newError(ErrValidation, "Source address is required"))
	}

	body, err := json.Marshal(buildPayload(sourceAddr, message, recipients, enc))
	if err != nil {
		return SendResult{}, c.fail(wrapError(ErrAPI, "failed to encode payload", err))
	}

	c.log.WithFields(logrus.Fields{
		"recipients":     len(recipients),
		"message_length": utf8.RuneCountInString(message),
		"encoding":       enc.String(),
	}).Info("Sending SMS")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return SendResult{}, c.fail(wrapError(ErrAPI, "Request failed: "+err.Error(), err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.apiKey, c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return SendResult{}, c.fail(transportError(err, c.timeout))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return SendResult{}, c.fail(transportError(err, c.timeout))
	}

	result, err := c.classify(resp.StatusCode, resp.Header, raw)
	if err != nil {
		return SendResult{}, err
	}

	c.log.WithField("duration", time.Since(start).Round(time.Millisecond)).Info("SMS operation completed")
	return result, nil
}

// SendBulk splits destAddrs into consecutive batches of batchSize and sends
// each batch in turn, pausing between batches.
//
// It returns exactly one SendResult per batch, in order. A batch that fails
// for any reason yields an unsuccessful result with StatusCode 0 and the
// remaining batches are still sent. The only error returned is ErrValidation
// for a non-positive batchSize.
func (c *Client) SendBulk(ctx context.Context, sourceAddr string, destAddrs []string, message string, enc Encoding, batchSize int) ([]SendResult, error) {
	if batchSize <= 0 {
		return nil, c.fail(newError(ErrValidation, "Batch size must be positive"))
	}

	total := (len(destAddrs) + batchSize - 1) / batchSize
	c.log.WithFields(logrus.Fields{
		"recipients":    len(destAddrs),
		"total_batches": total,
		"batch_size":    batchSize,
	}).Info("Sending bulk SMS")

	results := make([]SendResult, 0, total)
	for i := 0; i < len(destAddrs); i += batchSize {
		end := min(i+batchSize, len(destAddrs))
		n := i/batchSize + 1

		c.log.WithFields(logrus.Fields{"batch": n, "total_batches": total}).Info("Processing batch")

		res, err := c.Send(ctx, sourceAddr, destAddrs[i:end], message, enc)
		if err != nil {
			c.log.WithError(err).WithField("batch", n).Error("Batch failed")
			res = SendResult{
				Success:    false,
				StatusCode: 0,
				Message:    fmt.Sprintf("Batch %d failed: %v", n, err),
			}
		}
		results = append(results, res)

		if end < len(destAddrs) {
			c.pause(ctx)
		}
	}

	return results, nil
}

func (c *Client) pause(ctx context.Context) {
	if c.batchPause <= 0 {
		return
	}
	t := time.NewTimer(c.batchPause)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// fail logs err at the point of detection and returns it.
func (c *Client) fail(err *Error) error {
	entry := c.log.WithField("kind", err.Kind.Error())
	if err.Cause != nil {
		entry = entry.WithError(err.Cause)
	}
	if err.Kind == ErrValidation {
		entry.Warn(err.Message)
	} else {
		entry.Error(err.Message)
	}
	return err
}

func validateMessage(message string, enc Encoding) *Error {
	if strings.TrimSpace(message) == "" {
		return newError(ErrValidation, "Message cannot be empty")
	}
	if enc != PlainText && enc != Unicode {
		return newError(ErrValidation, fmt.Sprintf("Unsupported encoding: %d", int(enc)))
	}

	limit := enc.MaxLength()
	if utf8.RuneCountInString(message) > limit {
		return newError(ErrValidation, fmt.Sprintf("Message too long. Max length: %d characters", limit))
	}
	return nil
}

func validateRecipients(recipients []Recipient) *Error {
	if len(recipients) == 0 {
		return newError(ErrValidation, "At least one recipient is required")
	}
	for _, r := range recipients {
		if !phone.Validate(r.DestAddr) {
			return newError(ErrValidation, "Invalid phone number format: "+r.DestAddr)
		}
	}
	return nil
}

// Send is a one-shot helper: it opens a Client, sends a PlainText message
// and closes the Client on every path.
func Send(ctx context.Context, apiKey, secretKey, sourceAddr string, destAddrs []string, message string, opts ...Option) (SendResult, error) {
	c, err := NewClient(apiKey, secretKey, opts...)
	if err != nil {
		return SendResult{}, err
	}
	defer c.Close()

	return c.Send(ctx, sourceAddr, destAddrs, message, PlainText)
}
