package dispatch

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for Dispatch records.
//
// It is implemented by infrastructure layers (e.g. GORM) while the service
// layer depends only on this interface.
type Repository interface {
	// Save persists a new dispatch.
	Save(ctx context.Context, d *Dispatch) error

	// List returns a page of dispatches, newest first, and the total count.
	List(ctx context.Context, page, limit int) ([]*Dispatch, int64, error)

	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*Dispatch, error)

	// FindByRequestID returns ErrNotFound when no dispatch carries the gateway request id.
	FindByRequestID(ctx context.Context, requestID string) (*Dispatch, error)
}
