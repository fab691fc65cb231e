package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)

	r.OPTIONS("/defaults", OptionsCategoryDefaults)
	r.POST("/defaults", co.CreateDefaultCategories)
}

type CategoryCreate struct {
	Name string `json:"name" example:"Food"` // Name of the category
}

type CategoryDefaults struct {
	Names []string `json:"names" example:"Food,Transport"` // Names of the categories to create. If empty, the default set is used.
}

type CategoryResponse struct {
	Data models.Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // List of categories
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/defaults [options]
func OptionsCategoryDefaults(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List categories
// @Description	Returns all categories of the user, sorted by name
// @Tags			Categories
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.Ledger.ListCategories(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Returns the category with the name, creating it if it does not exist
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryCreate
	if err := httputil.BindData(c, &editable); !err.Nil() {
		httperrors.Respond(c, err)
		return
	}

	category, err := co.Ledger.ResolveOrCreateCategory(c.Request.Context(), userID(c), editable.Name)
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: category})
}

// @Summary		Create default categories
// @Description	Creates all categories of the list that do not exist yet and returns all categories of the user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BasicAuth
// @Success		200			{object}	CategoryListResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			categories	body		CategoryDefaults	false	"Categories"
// @Router			/v1/categories/defaults [post]
func (co Controller) CreateDefaultCategories(c *gin.Context) {
	var editable CategoryDefaults

	// The body is optional
	if c.Request.ContentLength != 0 {
		if err := httputil.BindData(c, &editable); !err.Nil() {
			httperrors.Respond(c, err)
			return
		}
	}

	err := co.Ledger.EnsureDefaultCategories(c.Request.Context(), userID(c), editable.Names)
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	co.GetCategories(c)
}
