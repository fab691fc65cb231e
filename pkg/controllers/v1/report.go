package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the read only reporting routes with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/reports", OptionsReport)
	r.GET("/reports", co.GetReport)

	r.OPTIONS("/dashboard", OptionsDashboard)
	r.GET("/dashboard", co.GetDashboard)
}

type ReportResponse struct {
	Data ledger.Report `json:"data"` // Data for the report
}

type DashboardResponse struct {
	Data ledger.Dashboard `json:"data"` // Data for the dashboard
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns spending and budget limits per category and all budget entries
// @Tags			Reports
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	ReportResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/reports [get]
func (co Controller) GetReport(c *gin.Context) {
	report, err := co.Ledger.Report(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: report})
}

// @Summary		Get dashboard
// @Description	Returns the overview of the finances of the user
// @Tags			Reports
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	dashboard, err := co.Ledger.Dashboard(c.Request.Context(), userID(c))
	if err != nil {
		httperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: dashboard})
}
