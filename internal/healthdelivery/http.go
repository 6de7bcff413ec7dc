// Package healthdelivery exposes the HTTP status surface of the bot:
// liveness and prometheus metrics.
package healthdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/internal/middleware"
)

// Pinger is the db subset needed by the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler facilitates status delivery layer logic.
type Handler struct {
	db Pinger
}

// NewHandler returns status handler.
func NewHandler(db Pinger) Handler {
	return Handler{db: db}
}

// NewServer builds the gin engine serving the status endpoints.
func NewServer(db Pinger, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	handler := NewHandler(db)

	server.GET("/healthz", handler.Health)
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return server
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles the liveness probe: it pings the ledger store.
func (h *Handler) Health(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	ctx, cancel := context.WithTimeout(gctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		l.Error().Err(err).Msg("database ping failed")
		gctx.JSON(http.StatusServiceUnavailable, healthResponse{Status: "degraded"})

		return
	}

	gctx.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
