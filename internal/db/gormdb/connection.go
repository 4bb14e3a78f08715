package gormdb

import (
	"github.com/oggyb/beem-sms/internal/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormDB holds the Postgres connection used for dispatch history.
type GormDB struct {
	conn *gorm.DB
}

// New opens Postgres with prepared statements and no implicit per-write
// transaction.
func New(dsn string) (*GormDB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}
	return &GormDB{conn: conn}, nil
}

func (g *GormDB) Conn() any {
	return g.conn
}

// verify it satisfies db.DB
var _ db.DB = (*GormDB)(nil)
