package handler

import (
	"net/http"
	"time"

	"github.com/portfolio/portfolio-server/internal/model"
)

const healthStatus = "Server is running!"

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    healthStatus,
		"timestamp": model.FormatTimestamp(h.now()),
	})
}
