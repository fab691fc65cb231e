package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/envelope-zero/expenses/pkg/models"
)

var (
	ErrNoIncomeConfigured = errors.New("there is no income configured for your user, please set your income first")
	ErrExpenseNotFound    = fmt.Errorf("%w expense with this ID for your user", models.ErrResourceNotFound)
	ErrUserExists         = errors.New("a user with this email address already exists")
	ErrInvalidCredentials = errors.New("incorrect email and/or password")
)

// FieldError is a problem with a single input field.
type FieldError struct {
	Field   string `json:"field" example:"amount"`                          // Name of the field
	Message string `json:"message" example:"amount must be greater than 0"` // What is wrong with it
}

// ValidationError contains all problems found with the input of an
// operation. Validation never stops at the first problem.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		messages = append(messages, f.Message)
	}

	return fmt.Sprintf("the request is invalid: %s", strings.Join(messages, ", "))
}

// Fields returns the messages keyed by field name.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, f := range e.Errors {
		fields[f.Field] = f.Message
	}

	return fields
}

// validation collects field errors.
type validation struct {
	errors []FieldError
}

// check records msg for field when ok is false. It reports ok so that
// dependent checks can be skipped.
func (v *validation) check(ok bool, field, msg string) bool {
	if !ok {
		v.errors = append(v.errors, FieldError{Field: field, Message: msg})
	}
	return ok
}

// err returns a *ValidationError if any check failed, nil otherwise.
func (v *validation) err() error {
	if len(v.errors) == 0 {
		return nil
	}

	return &ValidationError{Errors: v.errors}
}
