package armazenamento

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Carregador *Carregador
}

func NewHandler(c *Carregador) *Handler {
	return &Handler{Carregador: c}
}

// Carregar serve a carga inicial completa do painel.
func (h *Handler) Carregar(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Carregador.Carregar(r.Context())
	if err != nil {
		http.Error(w, "erro ao carregar dados", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snap)
}
