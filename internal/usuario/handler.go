package usuario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/auditoria"
	"github.com/VisualPrintBR/api-pcp/internal/auth"
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/notificacao"
	"github.com/VisualPrintBR/api-pcp/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e os colaboradores de auditoria e
// notificação (exclusão de usuário loga; redefinição de senha notifica).
type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Auditoria    auditoria.Repository
	Notificacoes notificacao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Auditoria:    auditoria.NewRepository(),
		Notificacoes: notificacao.NewRepository(),
	}
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type criarUsuarioRequest struct {
	Nome    string       `json:"nome"`
	Login   string       `json:"login"`
	Senha   string       `json:"senha"`
	IsAdmin bool         `json:"isAdmin"`
	Setor   models.Etapa `json:"setor"`
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorLogin(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.Nome, user.IsAdmin, user.Setor)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token":   token,
		"usuario": user,
	})
}

// Criar cadastra novo usuário (rota de admin).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Senha == "" {
		http.Error(w, "login e senha são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.Setor == "" {
		req.Setor = models.EtapaGeral
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:    req.Nome,
		Login:   req.Login,
		Senha:   hash,
		IsAdmin: req.IsAdmin,
		Setor:   req.Setor,
	}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// Listar devolve todos os usuários (rota de admin).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Atualizar edita nome, setor e papel (rota de admin).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	existente.Nome = req.Nome
	existente.IsAdmin = req.IsAdmin
	if req.Setor != "" {
		existente.Setor = req.Setor
	}
	if req.Senha != "" {
		hash, err := utils.HashSenha(req.Senha)
		if err != nil {
			http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
			return
		}
		existente.Senha = hash
		existente.PrecisaRedefinirSenha = false
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Deletar exclui o usuário e registra no log global (rota de admin).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}

	atorID, atorNome, _, _ := auth.UsuarioDoContexto(r.Context())
	detalhe := fmt.Sprintf("usuário %s (login %s)", existente.Nome, existente.Login)
	_ = h.Auditoria.Registrar(h.DB, auditoria.AcaoDeleteUser, atorID, atorNome, detalhe)

	w.WriteHeader(http.StatusNoContent)
}

// RedefinirSenha gera uma senha temporária, marca o usuário para trocar no
// próximo login e emite a notificação acionável para ele (rota de admin).
func (h *Handler) RedefinirSenha(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	temporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(temporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	existente.Senha = hash
	existente.PrecisaRedefinirSenha = true
	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "erro ao redefinir senha", http.StatusInternalServerError)
		return
	}

	n := notificacao.Notificacao{
		ID:           uuid.NewString(),
		Titulo:       "Senha redefinida",
		Mensagem:     "Sua senha foi redefinida por um administrador. Troque-a no próximo acesso.",
		Tipo:         notificacao.TipoInfo,
		Timestamp:    time.Now(),
		LidaPor:      []string{},
		TargetUserID: fmt.Sprint(existente.ID),
		Acao:         notificacao.Acao{Tipo: notificacao.AcaoRedefinirSenha, Login: existente.Login},
	}
	_ = h.Notificacoes.Criar(h.DB, &n)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": temporaria})
}
