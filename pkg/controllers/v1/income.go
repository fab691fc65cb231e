package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterIncomeRoutes registers the routes for the income with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncome)
	r.GET("", co.GetIncome)
	r.POST("", co.SetIncome)
}

type IncomeEditable struct {
	Value decimal.NullDecimal `json:"value" swaggertype:"number" example:"2500"` // The new income
}

type IncomeResponse struct {
	Data models.Income `json:"data"` // Data for the income
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get income
// @Description	Returns the current income, which is the one that was set last
// @Tags			Income
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	IncomeResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		409	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/income [get]
func (co Controller) GetIncome(c *gin.Context) {
	income, err := co.Ledger.CurrentIncome(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: income})
}

// @Summary		Set income
// @Description	Sets a new income. Previous incomes are kept.
// @Tags			Income
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income [post]
func (co Controller) SetIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	income, err := co.Ledger.SetIncome(c.Request.Context(), userID(c), editable.Value)
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: income})
}
