package handler

import (
	"net/http"

	"github.com/portfolio/portfolio-server/internal/model"
)

type PortfolioHandler struct {
	portfolio *model.Portfolio
}

func NewPortfolioHandler(portfolio *model.Portfolio) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.portfolio)
}
