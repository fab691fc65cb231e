package healthz

import (
	"context"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger checks the connection to a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object} httperrors.HTTPError
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := p.Ping(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Healthz")
			httperrors.Respond(c, httperrors.Error{Status: http.StatusInternalServerError, Err: httperrors.ErrDatabaseUnhealthy})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
