//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-block-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	reg := metrics.New()

	reg.ObserveOperation("create", nil)
	reg.ObserveOperation("create", nil)
	reg.ObserveOperation("destroy", errors.New("boom"))
	reg.ObserveTouch(nil)
	reg.ObserveNotification("jobs", errors.New("down"))
	reg.AddCodesAssigned(3)
	reg.AddCodesAssigned(0)

	expected := `
# HELP hotel_block_reservation_operations_total Reservation lifecycle operations by outcome.
# TYPE hotel_block_reservation_operations_total counter
hotel_block_reservation_operations_total{operation="create",outcome="ok"} 2
hotel_block_reservation_operations_total{operation="destroy",outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg.Gatherer(), strings.NewReader(expected), "hotel_block_reservation_operations_total"))

	count, err := testutil.GatherAndCount(reg.Gatherer(), "hotel_block_quote_touches_total", "hotel_block_confirmation_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRegistry_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := metrics.New()

	r := gin.New()
	r.Use(reg.Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(reg.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hotel_block_http_requests_total{method="GET",route="/items/:id",status="204"} 1`)
}
