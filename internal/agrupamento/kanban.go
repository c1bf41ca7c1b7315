package agrupamento

import (
	"sort"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
)

// Coluna do quadro Kanban. As cinco primeiras espelham as etapas na ordem do
// fluxo; done recebe itens arquivados ou com tudo concluído.
type Coluna string

const (
	ColunaDesign  Coluna = "design"
	ColunaPrint   Coluna = "print"
	ColunaProd    Coluna = "prod"
	ColunaInstall Coluna = "install"
	ColunaShip    Coluna = "ship"
	ColunaDone    Coluna = "done"
)

// ColunasKanban na ordem de exibição do quadro.
var ColunasKanban = []Coluna{ColunaDesign, ColunaPrint, ColunaProd, ColunaInstall, ColunaShip, ColunaDone}

var colunaPorEtapa = map[models.Etapa]Coluna{
	models.EtapaPreImpressao: ColunaDesign,
	models.EtapaImpressao:    ColunaPrint,
	models.EtapaProducao:     ColunaProd,
	models.EtapaInstalacao:   ColunaInstall,
	models.EtapaExpedicao:    ColunaShip,
}

// ClassificarEtapaKanban deriva a coluna de um item a cada leitura (nada é
// armazenado): done se arquivado; senão a primeira etapa, na ordem do fluxo,
// cujo status não é Concluído; senão done.
func ClassificarEtapaKanban(o ordem.Ordem) Coluna {
	if o.Arquivada {
		return ColunaDone
	}
	for _, etapa := range models.EtapasProducao {
		if o.StatusEtapa(etapa) != models.StatusConcluido {
			return colunaPorEtapa[etapa]
		}
	}
	return ColunaDone
}

// ClusterKanban é um cluster local a uma coluna: só os itens da O.R cuja
// classificação cai naquela coluna (itens de uma mesma O.R podem estar em
// colunas diferentes).
type ClusterKanban struct {
	OR                string        `json:"or"`
	TemPrioridadeAlta bool          `json:"temPrioridadeAlta"`
	DataEntrega       string        `json:"dataEntrega"`
	Itens             []ordem.Ordem `json:"itens"`
}

// AgruparKanban distribui os itens pelas colunas e, dentro de cada coluna,
// reagrupa por O.R e ordena: prioridade Alta primeiro, depois data de
// entrega ascendente.
func AgruparKanban(ordens []ordem.Ordem) map[Coluna][]ClusterKanban {
	porColuna := map[Coluna][]ordem.Ordem{}
	for _, o := range ordens {
		col := ClassificarEtapaKanban(o)
		porColuna[col] = append(porColuna[col], o)
	}

	resultado := map[Coluna][]ClusterKanban{}
	for _, col := range ColunasKanban {
		itens := porColuna[col]
		if len(itens) == 0 {
			continue
		}
		indice := map[string]int{}
		var clusters []ClusterKanban
		for _, o := range itens {
			i, ok := indice[o.OR]
			if !ok {
				i = len(clusters)
				indice[o.OR] = i
				clusters = append(clusters, ClusterKanban{OR: o.OR, DataEntrega: o.DataEntrega})
			}
			clusters[i].Itens = append(clusters[i].Itens, o)
			if o.Prioridade == models.PrioridadeAlta {
				clusters[i].TemPrioridadeAlta = true
			}
			if o.DataEntrega < clusters[i].DataEntrega {
				clusters[i].DataEntrega = o.DataEntrega
			}
		}
		sort.SliceStable(clusters, func(a, b int) bool {
			if clusters[a].TemPrioridadeAlta != clusters[b].TemPrioridadeAlta {
				return clusters[a].TemPrioridadeAlta
			}
			return clusters[a].DataEntrega < clusters[b].DataEntrega
		})
		resultado[col] = clusters
	}
	return resultado
}
