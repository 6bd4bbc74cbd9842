package db

import (
	"context"

	"gorm.io/gorm"
)

// SessionManager scopes one request's storage work to a unit of work.
type SessionManager struct{ db *gorm.DB }

func NewSessionManager(db *gorm.DB) *SessionManager { return &SessionManager{db: db} }

// Run executes fn inside a transaction on a checked-out connection. The
// transaction commits when fn returns nil and rolls back otherwise; the
// connection returns to the pool on every exit path, including panics.
func (m *SessionManager) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
