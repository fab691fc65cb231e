package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)
}

type BudgetEditable struct {
	Category string              `json:"category" example:"Food"`                  // Name of the category. Created if it does not exist.
	Month    *int                `json:"month" example:"6"`                        // Month, 1 to 12
	Year     *int                `json:"year" example:"2024"`                      // Year
	Limit    decimal.NullDecimal `json:"limit" swaggertype:"number" example:"200"` // Spending limit, must be greater than 0
}

type BudgetResponse struct {
	Data ledger.BudgetSummary `json:"data"` // Data for the budget entry
}

type BudgetListResponse struct {
	Data []ledger.BudgetSummary `json:"data"` // List of budget entries
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create budget
// @Description	Creates a new budget entry for the category and month. Requires an income to be set.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	summary, err := co.Ledger.CreateBudget(c.Request.Context(), userID(c), ledger.BudgetFields(editable))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: summary})
}

// @Summary		List budgets
// @Description	Returns all budget entries of the user with their spending. The total spent
// @Description	of an entry covers all expenses of its category, independent of the month.
// @Tags			Budgets
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	BudgetListResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	summaries, err := co.Ledger.ListBudgets(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: summaries})
}
