// Package v1 contains the handlers of the v1 API.
//
// All handlers except POST /v1/users require an authenticated user. The
// authentication middleware stores the ID of that user in the context.
package v1

import (
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller executes all requests against the ledger.
type Controller struct {
	Ledger *ledger.Ledger
}

// userID returns the ID of the authenticated user.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextUserID)).(uuid.UUID)
}

// baseURL returns the external URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
