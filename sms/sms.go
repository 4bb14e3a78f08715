// Package sms is a client for the Beem SMS gateway HTTP API.
//
// It validates and normalizes input, posts an authenticated JSON request,
// and turns the gateway's reply into a SendResult or a typed *Error.
// SendBulk splits large recipient lists into sequential batches.
package sms

import "context"

// Sender is the contract implemented by Client. Consumers depend on it so
// the gateway can be faked in tests.
type Sender interface {
	// Send dispatches one message to all destAddrs in a single request.
	Send(ctx context.Context, sourceAddr string, destAddrs []string, message string, enc Encoding) (SendResult, error)

	// SendBulk dispatches in batches and returns one result per batch.
	SendBulk(ctx context.Context, sourceAddr string, destAddrs []string, message string, enc Encoding, batchSize int) ([]SendResult, error)
}
