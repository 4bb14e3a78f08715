package dispatchgorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/beem-sms/internal/db"
	"github.com/oggyb/beem-sms/internal/domain/dispatch"
)

// Repository is a GORM-backed implementation of the dispatch.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a dispatch repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new dispatch record.
func (r *Repository) Save(ctx context.Context, d *dispatch.Dispatch) error {
	return r.db.WithContext(ctx).Create(fromDomain(d)).Error
}

// List returns a paginated list of dispatches, newest first, and the total count.
func (r *Repository) List(ctx context.Context, page, limit int) ([]*dispatch.Dispatch, int64, error) {
	var models []DispatchModel
	var total int64

	query := r.db.WithContext(ctx).Model(&DispatchModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// FindByID loads a single dispatch by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*dispatch.Dispatch, error) {
	var m DispatchModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	return r.one(&m, err)
}

// FindByRequestID loads the most recent dispatch carrying the gateway request id.
func (r *Repository) FindByRequestID(ctx context.Context, requestID string) (*dispatch.Dispatch, error) {
	var m DispatchModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		First(&m).Error
	return r.one(&m, err)
}

func (r *Repository) one(m *DispatchModel, err error) (*dispatch.Dispatch, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dispatch.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(m), nil
}

// compile-time interface check
var _ dispatch.Repository = (*Repository)(nil)
