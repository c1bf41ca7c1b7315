package ordem

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/auditoria"
	"github.com/VisualPrintBR/api-pcp/internal/auth"
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e o log global de exclusões.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Auditoria  auditoria.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Auditoria:  auditoria.NewRepository(),
	}
}

func atorDaRequisicao(r *http.Request) Ator {
	id, nome, isAdmin, setor := auth.UsuarioDoContexto(r.Context())
	return Ator{ID: id, Nome: nome, IsAdmin: isAdmin, Setor: setor}
}

// Criar trata POST /ordens: cria todos os itens de uma O.R de uma vez,
// com validação tudo-ou-nada.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarOrdemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	itens := make([]Ordem, 0, len(req.Itens))
	for _, it := range req.Itens {
		o := NovaOrdem(req.OR, it.NumeroItem, req.Cliente, req.Vendedor, it.Item, it.Quantidade, req.Prioridade, req.Observacao, it.DataEntrega)
		if it.Anexos != nil {
			o.Anexos = it.Anexos
		}
		itens = append(itens, o)
	}

	if err := ValidarSalvamento(itens); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.SalvarLote(h.DB, itens); err != nil {
		http.Error(w, "Erro ao salvar O.R", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(itens)
}

// Listar trata GET /ordens
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar ordens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /ordens/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

// Atualizar trata PUT /ordens/{id}: edição de um item isolado.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}

	existente.NumeroItem = req.NumeroItem
	existente.Item = req.Item
	existente.Quantidade = req.Quantidade
	existente.DataEntrega = req.DataEntrega
	if req.Anexos != nil {
		existente.Anexos = req.Anexos
	}

	// Revalida o cluster inteiro: numeroItem continua único dentro da O.R.
	cluster, err := h.Repository.BuscarPorOR(h.DB, existente.OR)
	if err != nil {
		http.Error(w, "Erro ao validar O.R", http.StatusInternalServerError)
		return
	}
	for i := range cluster {
		if cluster[i].ID == existente.ID {
			cluster[i] = *existente
		}
	}
	if err := ValidarSalvamento(cluster); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar ordem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Transicionar trata PATCH /ordens/{id}/etapas/{etapa}?modo=ciclo|avanco
func (h *Handler) Transicionar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	etapa := models.Etapa(vars["etapa"])

	modo := ModoCiclo
	if r.URL.Query().Get("modo") == string(ModoAvanco) {
		modo = ModoAvanco
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}

	atualizada, _, err := AplicarTransicao(*existente, etapa, atorDaRequisicao(r), modo, time.Now())
	if err != nil {
		var perm *ErroPermissao
		switch {
		case errors.As(err, &perm):
			http.Error(w, perm.Error(), http.StatusForbidden)
		case errors.Is(err, ErrSemAcao):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrEtapaInvalida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro na transição", http.StatusInternalServerError)
		}
		return
	}

	if err := h.Repository.Atualizar(h.DB, &atualizada); err != nil {
		http.Error(w, "Erro ao gravar transição", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// Arquivar trata POST /ordens/{id}/arquivar
func (h *Handler) Arquivar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}

	atualizada := Arquivar(*existente, time.Now())
	if err := h.Repository.Atualizar(h.DB, &atualizada); err != nil {
		http.Error(w, "Erro ao arquivar ordem", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// Reativar trata POST /ordens/{id}/reativar
func (h *Handler) Reativar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}

	atualizada := Reativar(*existente, atorDaRequisicao(r), time.Now())
	if err := h.Repository.Atualizar(h.DB, &atualizada); err != nil {
		http.Error(w, "Erro ao reativar ordem", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// AtualizarCabecalho trata PUT /ordens/or/{or}: salva o cabeçalho em todos
// os itens do cluster e anexa a entrada sintética "Dados Editados".
func (h *Handler) AtualizarCabecalho(w http.ResponseWriter, r *http.Request) {
	or := mux.Vars(r)["or"]

	var cab Cabecalho
	if err := json.NewDecoder(r.Body).Decode(&cab); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	itens, err := h.Repository.BuscarPorOR(h.DB, or)
	if err != nil || len(itens) == 0 {
		http.Error(w, "O.R não encontrada", http.StatusNotFound)
		return
	}

	ator := atorDaRequisicao(r)
	agora := time.Now()
	entradas := make(map[uint]models.HistoricoEntry, len(itens))
	for _, item := range itens {
		entradas[item.ID] = EntradaEdicao(ator, agora, item.Expedicao)
	}

	if err := h.Repository.AtualizarCabecalho(h.DB, or, cab, entradas); err != nil {
		http.Error(w, "Erro ao atualizar cabeçalho", http.StatusInternalServerError)
		return
	}

	atualizados, err := h.Repository.BuscarPorOR(h.DB, or)
	if err != nil {
		http.Error(w, "Erro ao recarregar O.R", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizados)
}

// Deletar trata DELETE /ordens/{id}: exclusão definitiva com log global.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Ordem não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir ordem", http.StatusInternalServerError)
		return
	}

	ator := atorDaRequisicao(r)
	detalhe := fmt.Sprintf("O.R %s, item %d (%s)", existente.OR, existente.ID, existente.Item)
	_ = h.Auditoria.Registrar(h.DB, auditoria.AcaoDeleteOrder, ator.ID, ator.Nome, detalhe)

	w.WriteHeader(http.StatusNoContent)
}

// DeletarLote trata DELETE /ordens: exclusão em lote com log por item.
func (h *Handler) DeletarLote(w http.ResponseWriter, r *http.Request) {
	var req deletarLoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		http.Error(w, "JSON inválido ou lista vazia", http.StatusBadRequest)
		return
	}

	ator := atorDaRequisicao(r)
	for _, id := range req.IDs {
		existente, err := h.Repository.BuscarPorID(h.DB, id)
		if err != nil {
			continue
		}
		detalhe := fmt.Sprintf("O.R %s, item %d (%s)", existente.OR, existente.ID, existente.Item)
		_ = h.Auditoria.Registrar(h.DB, auditoria.AcaoDeleteOrder, ator.ID, ator.Nome, detalhe)
	}

	if err := h.Repository.DeletarLote(h.DB, req.IDs); err != nil {
		http.Error(w, "Erro ao excluir ordens", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
