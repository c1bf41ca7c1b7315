package painel

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/agrupamento"
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"gorm.io/gorm"
)

// Handler serve as visões derivadas: resumo, semanas (tabela/calendário) e
// Kanban. Cada visão é uma projeção fina sobre os mesmos motores puros, de
// modo que tabela, Kanban e calendário nunca divergem sobre a etapa de uma
// ordem.
type Handler struct {
	DB         *gorm.DB
	Repository ordem.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: ordem.NewRepository(),
	}
}

// aplicarFiltros lê os query params comuns e aplica os filtros na ordem
// fixa: aba → busca → filtro rápido → setor.
func aplicarFiltros(ordens []ordem.Ordem, r *http.Request, comAba bool, hoje time.Time) []ordem.Ordem {
	q := r.URL.Query()

	if comAba {
		aba := AbaOperacional
		if Aba(q.Get("aba")) == AbaConcluidas {
			aba = AbaConcluidas
		}
		ordens = FiltrarPorAba(ordens, aba)
	}
	if termo := q.Get("busca"); termo != "" {
		ordens = FiltrarPorBusca(ordens, termo)
	}
	if filtro := FiltroRapido(q.Get("filtro")); filtro == FiltroProducao || filtro == FiltroAtrasadas {
		ordens = FiltrarRapido(ordens, filtro, hoje)
	}
	if setor := models.Etapa(q.Get("setor")); setor != "" {
		ordens = FiltrarPorSetor(ordens, setor)
	}
	return ordens
}

// Resumo trata GET /painel/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	ordens, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar ordens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularResumo(ordens, time.Now()))
}

// Semanas trata GET /painel/semanas (visão tabela/calendário)
func (h *Handler) Semanas(w http.ResponseWriter, r *http.Request) {
	ordens, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar ordens", http.StatusInternalServerError)
		return
	}
	hoje := time.Now()
	ordens = aplicarFiltros(ordens, r, true, hoje)

	direcao := agrupamento.Asc
	if r.URL.Query().Get("direcao") == string(agrupamento.Desc) {
		direcao = agrupamento.Desc
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(agrupamento.AgruparParaExibicao(ordens, direcao, hoje))
}

// Kanban trata GET /painel/kanban. O quadro ignora a partição de abas e
// mostra tudo.
func (h *Handler) Kanban(w http.ResponseWriter, r *http.Request) {
	ordens, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar ordens", http.StatusInternalServerError)
		return
	}
	ordens = aplicarFiltros(ordens, r, false, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(agrupamento.AgruparKanban(ordens))
}
