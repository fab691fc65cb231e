package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResolveOrCreateCategory returns the category of the user with the given
// name, creating it if it does not exist yet.
func (l *Ledger) ResolveOrCreateCategory(ctx context.Context, userID uuid.UUID, name string) (models.Category, error) {
	var v validation
	v.check(strings.TrimSpace(name) != "", "name", "name is required")
	if err := v.err(); err != nil {
		return models.Category{}, err
	}

	var category models.Category
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		category, err = resolveOrCreate(tx, userID, name)
		return err
	})

	return category, err
}

// EnsureDefaultCategories creates every category in names that the user
// does not have yet. Calling it repeatedly never creates duplicates.
//
// If names is empty, the default starter set of the ledger is used.
func (l *Ledger) EnsureDefaultCategories(ctx context.Context, userID uuid.UUID, names []string) error {
	if len(names) == 0 {
		names = l.defaultCategories
	}

	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ensureCategories(tx, userID, names)
	})
}

// ensureCategories creates the categories in names the user does not have yet.
func ensureCategories(tx *gorm.DB, userID uuid.UUID, names []string) error {
	var existing []string
	err := tx.Model(&models.Category{}).Where("user_id = ?", userID).Pluck("name", &existing).Error
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || known[name] {
			continue
		}

		err := tx.Create(&models.Category{UserID: userID, Name: name}).Error
		if err != nil {
			return err
		}
		known[name] = true
	}

	return nil
}

// ListCategories returns all categories of the user, ordered by name.
func (l *Ledger) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	return models.User{DefaultModel: models.DefaultModel{ID: userID}}.Categories(l.db.WithContext(ctx))
}

// resolveOrCreate looks up the category by (user, name) and inserts it
// on a miss. It must run inside a transaction so that a failure of the
// surrounding operation also discards the new category.
func resolveOrCreate(tx *gorm.DB, userID uuid.UUID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)

	var category models.Category
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Category{}, err
	}

	category = models.Category{UserID: userID, Name: name}
	err = tx.Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	log.Debug().Str("user", userID.String()).Str("category", name).Msg("created category")
	return category, nil
}
