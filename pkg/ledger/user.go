package ledger

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultPasswordCost = bcrypt.DefaultCost

// UserFields are the values submitted at registration.
type UserFields struct {
	Email        string
	Password     string
	Confirmation string // Must match Password
}

func (f UserFields) validate() (UserFields, error) {
	var v validation

	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	if v.check(f.Email != "", "email", "email is required") {
		_, err := mail.ParseAddress(f.Email)
		v.check(err == nil, "email", "email is not a valid email address")
	}

	if v.check(f.Password != "", "password", "password is required") {
		v.check(len(f.Password) <= 72, "password", "password cannot be longer than 72 bytes")
	}

	v.check(f.Confirmation == f.Password, "confirmation", "passwords do not match")

	return f, v.err()
}

// RegisterUser creates a new user with a hashed password and seeds the
// default categories of the ledger for it. Either both succeed or nothing
// is stored.
func (l *Ledger) RegisterUser(ctx context.Context, fields UserFields) (models.User, error) {
	fields, err := fields.validate()
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields.Password), l.passwordCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Email: fields.Email, PasswordHash: string(hash)}
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&user).Error
		if err != nil {
			return err
		}

		return ensureCategories(tx, user.ID, l.defaultCategories)
	})
	if errors.Is(err, models.ErrUserEmailNotUnique) {
		return models.User{}, ErrUserExists
	} else if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("registered user")
	return user, nil
}

// Authenticate returns the user with the email address if the password
// matches. Otherwise, ErrInvalidCredentials is returned.
func (l *Ledger) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := l.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns the user with the ID.
func (l *Ledger) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User

	err := l.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmail returns the user with the email address.
func (l *Ledger) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	err := l.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
