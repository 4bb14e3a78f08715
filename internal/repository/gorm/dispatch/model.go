package dispatchgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DispatchModel is the GORM persistence model for dispatches.
// It maps directly to the "dispatches" table in Postgres.
type DispatchModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BulkID        *uuid.UUID     `gorm:"type:uuid;index"`
	Batch         int            `gorm:"not null;default:0"`
	SourceAddr    string         `gorm:"size:20;not null"`
	Recipients    int            `gorm:"not null"`
	Encoding      int            `gorm:"not null"`
	MessageLength int            `gorm:"not null"`
	Success       bool           `gorm:"not null;index"`
	StatusCode    int            `gorm:"not null"`
	ResultMessage string         `gorm:"type:text"`
	RequestID     string         `gorm:"size:100;index"`
	RawResponse   string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"not null;index"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (DispatchModel) TableName() string {
	return "dispatches"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *DispatchModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
