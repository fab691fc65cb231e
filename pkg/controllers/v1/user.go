package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with the RouterGroup
// that is passed. Registration is public, auth protects all other routes.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	r.OPTIONS("", OptionsUserList)
	r.POST("", co.CreateUser)

	r.OPTIONS("/me", OptionsUserMe)
	r.GET("/me", auth, co.GetMe)
}

type UserCreate struct {
	Email        string `json:"email" example:"jane@example.com"` // Email address, used to log in
	Password     string `json:"password" example:"correct horse battery staple"`
	Confirmation string `json:"confirmation" example:"correct horse battery staple"` // Must match the password
}

type UserResponse struct {
	Data models.User `json:"data"` // Data for the user
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Register user
// @Description	Registers a new user and seeds the default categories for them
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var editable UserCreate
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	user, err := co.Ledger.RegisterUser(c.Request.Context(), ledger.UserFields(editable))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: user})
}

// @Summary		Get authenticated user
// @Description	Returns the user the request is authenticated as
// @Tags			Users
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/users/me [get]
func (co Controller) GetMe(c *gin.Context) {
	user, err := co.Ledger.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}
