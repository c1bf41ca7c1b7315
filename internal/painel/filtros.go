package painel

import (
	"strings"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
)

// Aba da visão de tabela. O calendário e o Kanban ignoram a partição e
// recebem tudo.
type Aba string

const (
	AbaOperacional Aba = "OPERACIONAL"
	AbaConcluidas  Aba = "CONCLUIDAS"
)

// FiltroRapido do painel, mutuamente exclusivos e só ativos na aba
// operacional.
type FiltroRapido string

const (
	FiltroTodas     FiltroRapido = "TODAS"
	FiltroProducao  FiltroRapido = "PRODUCAO"
	FiltroAtrasadas FiltroRapido = "ATRASADAS"
)

// FiltrarPorAba particiona entre ativas e arquivadas.
func FiltrarPorAba(ordens []ordem.Ordem, aba Aba) []ordem.Ordem {
	var out []ordem.Ordem
	for _, o := range ordens {
		if (aba == AbaConcluidas) == o.Arquivada {
			out = append(out, o)
		}
	}
	return out
}

// FiltrarPorBusca retém ordens com o termo (case-insensitive) em cliente,
// or, vendedor, item, numeroItem ou na data de entrega em DD/MM/YYYY.
// O debounce de 300ms entre tecla e filtro é contrato do cliente.
func FiltrarPorBusca(ordens []ordem.Ordem, termo string) []ordem.Ordem {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return ordens
	}
	var out []ordem.Ordem
	for _, o := range ordens {
		campos := []string{
			o.Cliente,
			o.OR,
			o.Vendedor,
			o.Item,
			o.NumeroItem,
			FormatarDataBR(o.DataEntrega),
		}
		for _, campo := range campos {
			if strings.Contains(strings.ToLower(campo), termo) {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

// FiltrarRapido aplica o filtro rápido do painel.
func FiltrarRapido(ordens []ordem.Ordem, filtro FiltroRapido, hoje time.Time) []ordem.Ordem {
	switch filtro {
	case FiltroProducao:
		var out []ordem.Ordem
		for _, o := range ordens {
			if o.EmProducaoEmAlgumaEtapa() {
				out = append(out, o)
			}
		}
		return out
	case FiltroAtrasadas:
		corte := hoje.Format("2006-01-02")
		var out []ordem.Ordem
		for _, o := range ordens {
			if !o.Arquivada && o.DataEntrega < corte {
				out = append(out, o)
			}
		}
		return out
	}
	return ordens
}

// FiltrarPorSetor retém as ordens com a etapa dada Em Produção. O toggle de
// coluna (mesma etapa limpa, outra troca, nunca duas) é estado do cliente;
// o servidor filtra por no máximo uma etapa.
func FiltrarPorSetor(ordens []ordem.Ordem, etapa models.Etapa) []ordem.Ordem {
	if !models.EtapaValida(etapa) {
		return ordens
	}
	var out []ordem.Ordem
	for _, o := range ordens {
		if o.StatusEtapa(etapa) == models.StatusEmProducao {
			out = append(out, o)
		}
	}
	return out
}

// FormatarDataBR converte YYYY-MM-DD em DD/MM/YYYY. Entrada fora do formato
// volta como veio.
func FormatarDataBR(data string) string {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return data
	}
	return t.Format("02/01/2006")
}
