package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Users      string `json:"users" example:"https://example.com/api/v1/users"`           // URL of the user registration endpoint
	Me         string `json:"me" example:"https://example.com/api/v1/users/me"`           // URL of the authenticated user
	Income     string `json:"income" example:"https://example.com/api/v1/income"`         // URL of the income endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of Category collection endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of Expense collection endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`       // URL of Budget collection endpoint
	Reports    string `json:"reports" example:"https://example.com/api/v1/reports"`       // URL of the reports endpoint
	Dashboard  string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`   // URL of the dashboard endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:      url + "/v1/users",
			Me:         url + "/v1/users/me",
			Income:     url + "/v1/income",
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Budgets:    url + "/v1/budgets",
			Reports:    url + "/v1/reports",
			Dashboard:  url + "/v1/dashboard",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
