package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type HealthHandler struct{}

func (HealthHandler) Init(r chi.Router) {
	r.Get("/health", Health)
}

// Health reports that the server is up.
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
