package cache

import "fmt"

type Prefix string

const (
	// SentRequests maps a gateway request id to the dispatch id that produced it.
	SentRequests Prefix = "sent_requests"
	// SentCount holds the number of successful dispatches per day (YYYY-MM-DD).
	SentCount Prefix = "sent_count"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
