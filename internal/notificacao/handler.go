package notificacao

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/auth"
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type enviarAlertaRequest struct {
	Titulo       string       `json:"titulo"`
	Mensagem     string       `json:"mensagem"`
	Tipo         Tipo         `json:"tipo"`
	TargetUserID string       `json:"targetUserId"`
	TargetSetor  models.Etapa `json:"targetSetor"`
}

// Listar trata GET /notificacoes: só os alertas visíveis para o usuário da
// sessão, por severidade.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	id, _, _, _ := auth.UsuarioDoContexto(r.Context())

	lista, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar notificações", http.StatusInternalServerError)
		return
	}
	visiveis := VisiveisPara(lista, fmt.Sprint(id))
	if visiveis == nil {
		visiveis = []Notificacao{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(visiveis)
}

// EnviarAlerta trata POST /notificacoes: alerta manual, com alvo explícito.
func (h *Handler) EnviarAlerta(w http.ResponseWriter, r *http.Request) {
	var req enviarAlertaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Titulo == "" || req.Mensagem == "" {
		http.Error(w, "título e mensagem são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.TargetUserID == "" {
		req.TargetUserID = TargetTodos
	}
	tipo := req.Tipo
	if tipo.Severidade() == 0 && tipo != TipoInfo {
		tipo = TipoInfo
	}

	n := Notificacao{
		ID:           uuid.NewString(),
		Titulo:       req.Titulo,
		Mensagem:     req.Mensagem,
		Tipo:         tipo,
		Timestamp:    time.Now(),
		LidaPor:      []string{},
		TargetUserID: req.TargetUserID,
		TargetSetor:  req.TargetSetor,
		Acao:         Acao{Tipo: AcaoNenhuma},
	}
	if err := h.Repository.Criar(h.DB, &n); err != nil {
		http.Error(w, "Erro ao enviar alerta", http.StatusInternalServerError)
		return
	}
	_ = h.Repository.PodarExcedentes(h.DB, Teto)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(n)
}

// MarcarLida trata POST /notificacoes/{id}/lida
func (h *Handler) MarcarLida(w http.ResponseWriter, r *http.Request) {
	id, _, _, _ := auth.UsuarioDoContexto(r.Context())
	notifID := mux.Vars(r)["id"]

	if err := h.Repository.MarcarLida(h.DB, notifID, fmt.Sprint(id)); err != nil {
		http.Error(w, "Notificação não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarcarTodasLidas trata POST /notificacoes/lidas
func (h *Handler) MarcarTodasLidas(w http.ResponseWriter, r *http.Request) {
	id, _, _, _ := auth.UsuarioDoContexto(r.Context())

	if err := h.Repository.MarcarTodasLidas(h.DB, fmt.Sprint(id)); err != nil {
		http.Error(w, "Erro ao marcar notificações", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
