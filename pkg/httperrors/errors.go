package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidUUID       = errors.New("the specified resource ID is not a valid UUID")
	ErrRequestBodyEmpty  = errors.New("the request body must not be empty")
	ErrInvalidBody       = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidQuery      = errors.New("the query string contains unparseable data. Please check the values")
	ErrAuthRequired      = errors.New("you need to authenticate with your email address and password")
	ErrMethodNotAllowed  = errors.New("this HTTP method is not allowed for the endpoint you called")
	ErrDatabaseUnhealthy = errors.New("there is a problem with the database connection")
)

// Parse returns the Error with the HTTP status matching err.
func Parse(c *gin.Context, err error) Error {
	if err == nil {
		return Error{}
	}

	// Already parsed
	var e Error
	if errors.As(err, &e) {
		return e
	}

	var validationErr *ledger.ValidationError
	if errors.As(err, &validationErr) {
		return Error{Status: http.StatusBadRequest, Err: err}
	}

	var unmarshalErr *json.UnmarshalTypeError
	if errors.As(err, &unmarshalErr) {
		return Error{Status: http.StatusBadRequest, Err: fmt.Errorf("the field %s has the wrong type, it must be a %s", unmarshalErr.Field, unmarshalErr.Type)}
	}

	switch {
	case errors.Is(err, ledger.ErrInvalidCredentials):
		return Error{Status: http.StatusUnauthorized, Err: err}

	case errors.Is(err, ledger.ErrNoIncomeConfigured),
		errors.Is(err, ledger.ErrUserExists),
		errors.Is(err, models.ErrUserEmailNotUnique),
		errors.Is(err, models.ErrCategoryNameNotUnique):
		return Error{Status: http.StatusConflict, Err: err}

	case errors.Is(err, models.ErrResourceNotFound):
		return Error{Status: http.StatusNotFound, Err: err}

	case errors.Is(err, models.ErrGeneral):
		return Error{Status: http.StatusInternalServerError, Err: err}
	}

	// All other errors are unexpected
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return Error{
		Status: http.StatusInternalServerError,
		Err:    fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)),
	}
}

// Respond writes the error response for err and aborts the request.
func Respond(c *gin.Context, err error) {
	e := Parse(c, err)

	body := HTTPError{Error: e.Error()}

	var validationErr *ledger.ValidationError
	if errors.As(e.Err, &validationErr) {
		body.Fields = validationErr.Fields()
	}

	c.AbortWithStatusJSON(e.Status, body)
}
