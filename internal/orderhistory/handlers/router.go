package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"order-history-service/internal/common/logger"
)

// Router wires the customer-facing endpoints onto a gin engine.
func Router(h *Handler, lg *logger.Logger, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(lg))

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	api := router.Group("/api")
	{
		api.GET("/customer/orders", h.OrderHistoryHandler.GetOrderHistory)
	}

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(lg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		lg.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		)
	}
}
