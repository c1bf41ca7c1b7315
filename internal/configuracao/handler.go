package configuracao

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar devolve as configurações como um mapa chave -> valor.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar configurações", http.StatusInternalServerError)
		return
	}

	resp := make(map[string]string, len(list))
	for _, c := range list {
		resp[c.Chave] = c.Valor
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Definir grava (ou sobrescreve) cada par do corpo (rota de admin).
func (h *Handler) Definir(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req) == 0 {
		http.Error(w, "nenhuma configuração informada", http.StatusBadRequest)
		return
	}

	for chave, valor := range req {
		if err := h.Repository.Definir(h.DB, chave, valor); err != nil {
			http.Error(w, "erro ao salvar configuração", http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
