package db

// DB is the storage port behind the dispatch repository. Conn returns the
// driver handle; for gormdb that is a *gorm.DB.
type DB interface {
	Conn() any
}
