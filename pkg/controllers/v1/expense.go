package v1

import (
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

type ExpenseEditable struct {
	Description   string              `json:"description" example:"Weekly groceries"`                       // What the money was spent on
	Merchant      string              `json:"merchant" example:"Corner Shop"`                               // Where the money was spent
	Category      string              `json:"category" example:"Food"`                                      // Name of the category. Created if it does not exist.
	Amount        decimal.NullDecimal `json:"amount" swaggertype:"number" example:"42.17"`                  // Amount spent, must be greater than 0
	Currency      string              `json:"currency" example:"USD"`                                       // ISO 4217 currency code
	BudgetEntryID *uuid.UUID          `json:"budgetEntryId" example:"7f1d7c77-8a1f-4a0e-92ad-7f5fbb35c8d9"` // Optional budget entry of the same category
}

func (editable ExpenseEditable) fields() ledger.ExpenseFields {
	return ledger.ExpenseFields{
		Description:   editable.Description,
		Merchant:      editable.Merchant,
		Category:      editable.Category,
		Amount:        editable.Amount,
		Currency:      editable.Currency,
		BudgetEntryID: editable.BudgetEntryID,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/2e8c6b4f-0f0b-4f7a-a3d4-5b6e8e1c9a7d"` // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/expenses?category=Food"`                     // Expenses in the same category
}

// Expense is the API v1 representation of an Expense.
type Expense struct {
	models.Expense
	CategoryName string       `json:"category" example:"Food"` // Name of the category
	Links        ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := baseURL(c)

	return Expense{
		Expense:      model,
		CategoryName: model.Category.Name,
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/expenses?category=%s", url, neturl.QueryEscape(model.Category.Name)),
		},
	}
}

// Overspend is set on responses for expenses exceeding the income.
type Overspend struct {
	Message string          `json:"message" example:"you cannot afford this expense: the amount of 150 exceeds your income of 100"`
	Amount  decimal.Decimal `json:"amount" example:"150"` // Amount of the expense
	Income  decimal.Decimal `json:"income" example:"100"` // Current income
}

type ExpenseResponse struct {
	Data      Expense    `json:"data"`      // Data for the expense
	Overspend *Overspend `json:"overspend"` // Set if the amount exceeds the current income. The expense is recorded anyway.
}

func newExpenseResponse(c *gin.Context, result ledger.ExpenseResult) ExpenseResponse {
	r := ExpenseResponse{Data: newExpense(c, result.Expense)}

	if w := result.Overspend; w != nil {
		r.Overspend = &Overspend{
			Message: w.String(),
			Amount:  w.Amount,
			Income:  w.Income,
		}
	}

	return r
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`       // List of expenses
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ExpenseQueryFilter struct {
	Category string `form:"category"` // Exact category name
	Currency string `form:"currency"` // ISO 4217 code
	Merchant string `form:"merchant"` // Glob pattern for the merchant
	Offset   uint   `form:"offset"`   // The offset of the first expense returned
	Limit    int    `form:"limit"`    // Maximum number of expenses to return
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	_, err := httputil.UUIDFromString(c.Param("id"))
	if !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Record expense
// @Description	Records a new expense dated today. Requires an income to be set.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	result, err := co.Ledger.RecordExpense(c.Request.Context(), userID(c), editable.fields())
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, newExpenseResponse(c, result))
}

// @Summary		List expenses
// @Description	Returns the expenses of the user, newest first
// @Tags			Expenses
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category name"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			merchant	query	string	false	"Filter by merchant, supports * as wildcard"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httperrors.Respond(c, httperrors.Error{Status: http.StatusBadRequest, Err: httperrors.ErrInvalidQuery})
		return
	}

	// Default to 50 expenses
	limit := 50
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}

	expenses, total, err := co.Ledger.ListExpenses(c.Request.Context(), userID(c), ledger.ExpenseFilter{
		Category: filter.Category,
		Currency: filter.Currency,
		Merchant: filter.Merchant,
		Offset:   filter.Offset,
		Limit:    limit,
	})
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	id, e := httputil.UUIDFromString(c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	expense, err := co.Ledger.GetExpense(c.Request.Context(), userID(c), id)
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(c, expense)})
}

// @Summary		Update expense
// @Description	Replaces all fields of an expense. The date does not change.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	id, e := httputil.UUIDFromString(c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	result, err := co.Ledger.EditExpense(c.Request.Context(), userID(c), id, editable.fields())
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenseResponse(c, result))
}

// @Summary		Delete expense
// @Description	Deletes an expense. Deleting an expense that does not exist succeeds.
// @Tags			Expenses
// @Security		BasicAuth
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, e := httputil.UUIDFromString(c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	_, err := co.Ledger.DeleteExpense(c.Request.Context(), userID(c), id)
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
