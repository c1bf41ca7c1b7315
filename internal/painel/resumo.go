package painel

import (
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/ordem"
)

// Resumo são os contadores exibidos no topo do painel.
type Resumo struct {
	Total       int `json:"total"`
	Atrasadas   int `json:"atrasadas"`
	EmAndamento int `json:"emAndamento"`
}

// CalcularResumo conta sobre as ordens cruas: total de não arquivadas,
// não arquivadas vencidas e não arquivadas com alguma etapa Em Produção.
func CalcularResumo(ordens []ordem.Ordem, hoje time.Time) Resumo {
	corte := hoje.Format("2006-01-02")
	var r Resumo
	for _, o := range ordens {
		if o.Arquivada {
			continue
		}
		r.Total++
		if o.DataEntrega < corte {
			r.Atrasadas++
		}
		if o.EmProducaoEmAlgumaEtapa() {
			r.EmAndamento++
		}
	}
	return r
}
