// Package ledger implements the rules that keep expenses, categories,
// budget entries and incomes of a user consistent, and computes the
// figures derived from them.
//
// Every operation takes the ID of the acting user explicitly. All reads
// and writes are scoped to resources owned by that user, either directly
// (incomes, categories) or through the category (expenses, budget entries).
package ledger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultCategories is the starter set of categories for new users.
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Utilities", "Shopping"}

// Ledger executes all operations against the store it was created with.
type Ledger struct {
	db                *gorm.DB
	now               func() time.Time
	defaultCategories []string
	passwordCost      int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the function used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithDefaultCategories replaces the default starter set of categories.
func WithDefaultCategories(names []string) Option {
	return func(l *Ledger) {
		l.defaultCategories = names
	}
}

// WithPasswordCost sets the bcrypt cost used to hash passwords.
func WithPasswordCost(cost int) Option {
	return func(l *Ledger) {
		l.passwordCost = cost
	}
}

// New returns a Ledger for the store.
func New(db *gorm.DB, opts ...Option) *Ledger {
	l := &Ledger{
		db:                db,
		now:               time.Now,
		defaultCategories: DefaultCategories,
		passwordCost:      defaultPasswordCost,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// DefaultCategories returns the starter set of categories this ledger seeds.
func (l *Ledger) DefaultCategories() []string {
	return l.defaultCategories
}

// Ping verifies that the store is reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
