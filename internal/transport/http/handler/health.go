package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"versenotes/internal/bootstrap"
	"versenotes/internal/platform/database"
	"versenotes/internal/transport/http/response"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Check is the liveness probe. It never touches dependencies.
func (h *HealthHandler) Check(c *gin.Context) {
	response.OK(c, "Server is running", nil)
}

// Ready pings the database and reports broker state when one is configured.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	db := h.checkDatabase(ctx)
	deps := gin.H{"database": db}
	allOK := db.OK

	if h.app.Config != nil && h.app.Config.RabbitMQ.URL != "" {
		mq := h.checkRabbitMQ()
		deps["rabbitmq"] = mq
		allOK = allOK && mq.OK
	}

	statusCode := http.StatusOK
	if !allOK {
		statusCode = http.StatusServiceUnavailable
	}

	response.Status(c, statusCode, allOK, gin.H{
		"uptime_sec":   int(time.Since(h.app.StartedAt).Seconds()),
		"dependencies": deps,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) dependencyStatus {
	if h.app.DB == nil {
		return dependencyStatus{OK: false, Message: "not configured"}
	}
	if err := database.Ping(ctx, h.app.DB); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}

func (h *HealthHandler) checkRabbitMQ() dependencyStatus {
	if h.app.MQConn == nil || h.app.MQConn.IsClosed() {
		return dependencyStatus{OK: false, Message: "connection closed"}
	}
	return dependencyStatus{OK: true}
}
