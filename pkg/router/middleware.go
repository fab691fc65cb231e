package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}

// authRealm is sent in the WWW-Authenticate header of 401 responses.
const authRealm = `Basic realm="expenses"`

// AuthMiddleware authenticates the request with HTTP Basic authentication
// and stores the ID of the user in the context.
func AuthMiddleware(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", authRealm)
			httperrors.Respond(c, httperrors.Error{Status: http.StatusUnauthorized, Err: httperrors.ErrAuthRequired})
			return
		}

		user, err := l.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			if errors.Is(err, ledger.ErrInvalidCredentials) {
				c.Header("WWW-Authenticate", authRealm)
			}
			httperrors.Respond(c, err)
			return
		}

		c.Set(string(models.ContextUserID), user.ID)
		c.Next()
	}
}

// metrics returns all collectors exposed on the metrics endpoint.
func metrics() []prometheus.Collector {
	return append([]prometheus.Collector{
		requestCount,
		requestDuration,
	}, ledger.Collectors()...)
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry. Collectors that are already
// registered are skipped.
func registerPrometheusMetrics() error {
	for _, c := range metrics() {
		err := prometheus.Register(c)

		var are prometheus.AlreadyRegisteredError
		if err != nil && !errors.As(err, &are) {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
