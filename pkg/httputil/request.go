package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) httperrors.Error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return httperrors.Error{Status: http.StatusBadRequest, Err: httperrors.ErrRequestBodyEmpty}
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return httperrors.Parse(c, err)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return httperrors.Error{Status: http.StatusBadRequest, Err: httperrors.ErrInvalidBody}
	}

	return httperrors.Error{}
}

// UUIDFromString parses a path parameter into a UUID.
func UUIDFromString(s string) (uuid.UUID, httperrors.Error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, httperrors.Error{Status: http.StatusBadRequest, Err: httperrors.ErrInvalidUUID}
	}

	return u, httperrors.Error{}
}
