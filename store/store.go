package store

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store wraps the database handle with the operations the handlers need.
// Every method takes a context and scopes its work to one session; the
// transaction boundary inside UpdateProfile is the only multi-statement
// unit.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log.Named("store")}
}
