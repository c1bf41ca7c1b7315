package agrupamento

import (
	"fmt"
	"sort"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/ordem"
)

// Direcao da ordenação dos clusters pela data-âncora.
type Direcao string

const (
	Asc  Direcao = "asc"
	Desc Direcao = "desc"
)

// Cluster é o conjunto de itens que compartilham um número de O.R, com a
// data-âncora que posiciona o conjunto no calendário.
type Cluster struct {
	OR     string        `json:"or"`
	Ancora string        `json:"ancora"`
	Itens  []ordem.Ordem `json:"itens"`
}

// GrupoDia agrupa os clusters de uma mesma data de entrega.
type GrupoDia struct {
	Data     string    `json:"data"`
	NomeDia  string    `json:"nomeDia"`
	Clusters []Cluster `json:"clusters"`
}

// GrupoSemana agrupa os dias de uma semana ISO.
type GrupoSemana struct {
	ID     string     `json:"id"`
	Titulo string     `json:"titulo"`
	Atual  bool       `json:"atual"`
	Dias   []GrupoDia `json:"dias"`
}

var nomesDias = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// Clusters particiona os itens por O.R preservando a ordem de primeira
// aparição, ordena os itens de cada cluster por numeroItem (comparação
// natural, empate pela ordem original) e calcula a data-âncora.
func Clusters(ordens []ordem.Ordem) []Cluster {
	indice := map[string]int{}
	var clusters []Cluster
	for _, o := range ordens {
		i, ok := indice[o.OR]
		if !ok {
			i = len(clusters)
			indice[o.OR] = i
			clusters = append(clusters, Cluster{OR: o.OR})
		}
		clusters[i].Itens = append(clusters[i].Itens, o)
	}
	for i := range clusters {
		itens := clusters[i].Itens
		sort.SliceStable(itens, func(a, b int) bool {
			return CompararNatural(itens[a].NumeroItem, itens[b].NumeroItem) < 0
		})
		clusters[i].Ancora = DataAncora(itens)
	}
	return clusters
}

// DataAncora devolve a data que posiciona o cluster: a menor data de entrega
// entre os itens ativos; se todos arquivados, a maior entre todos (clusters
// encerrados ancoram na data mais recente).
func DataAncora(itens []ordem.Ordem) string {
	var min, max string
	for _, o := range itens {
		if max == "" || o.DataEntrega > max {
			max = o.DataEntrega
		}
		if !o.Arquivada && (min == "" || o.DataEntrega < min) {
			min = o.DataEntrega
		}
	}
	if min != "" {
		return min
	}
	return max
}

// AgruparParaExibicao é o pipeline completo da visão de tabela/calendário:
// clusters por O.R → ordenação pela âncora → buckets semana ISO → dia.
// Puro e determinístico; a entrada nunca é mutada.
func AgruparParaExibicao(ordens []ordem.Ordem, direcao Direcao, hoje time.Time) []GrupoSemana {
	entrada := make([]ordem.Ordem, len(ordens))
	copy(entrada, ordens)

	clusters := Clusters(entrada)

	sort.SliceStable(clusters, func(a, b int) bool {
		if clusters[a].Ancora != clusters[b].Ancora {
			if direcao == Desc {
				return clusters[a].Ancora > clusters[b].Ancora
			}
			return clusters[a].Ancora < clusters[b].Ancora
		}
		// Empate sempre por O.R descendente, independente da direção.
		return CompararNatural(clusters[a].OR, clusters[b].OR) > 0
	})

	anoAtual, semanaAtual := hoje.ISOWeek()

	indiceSemana := map[string]int{}
	var semanas []GrupoSemana
	for _, c := range clusters {
		t, err := time.Parse("2006-01-02", c.Ancora)
		if err != nil {
			continue
		}
		ano, semana := t.ISOWeek()
		id := fmt.Sprintf("%d-W%02d", ano, semana)

		i, ok := indiceSemana[id]
		if !ok {
			i = len(semanas)
			indiceSemana[id] = i
			semanas = append(semanas, GrupoSemana{
				ID:     id,
				Titulo: tituloSemana(t, semana),
				Atual:  ano == anoAtual && semana == semanaAtual,
			})
		}
		semanas[i].Dias = anexarAoDia(semanas[i].Dias, c, t)
	}

	// Semanas sempre cronológicas ascendentes, independente da direção dos
	// clusters (o id ANO-Wnn ordena lexicograficamente na cronologia).
	sort.SliceStable(semanas, func(a, b int) bool {
		return semanas[a].ID < semanas[b].ID
	})
	for i := range semanas {
		dias := semanas[i].Dias
		sort.SliceStable(dias, func(a, b int) bool {
			return dias[a].Data < dias[b].Data
		})
	}
	return semanas
}

func anexarAoDia(dias []GrupoDia, c Cluster, t time.Time) []GrupoDia {
	for i := range dias {
		if dias[i].Data == c.Ancora {
			dias[i].Clusters = append(dias[i].Clusters, c)
			return dias
		}
	}
	return append(dias, GrupoDia{
		Data:     c.Ancora,
		NomeDia:  nomesDias[t.Weekday()],
		Clusters: []Cluster{c},
	})
}

// tituloSemana monta o rótulo da semana: "Semana 20 (13/05 a 19/05)".
func tituloSemana(t time.Time, semana int) string {
	// Recuamos até a segunda-feira da semana ISO.
	inicio := t
	for inicio.Weekday() != time.Monday {
		inicio = inicio.AddDate(0, 0, -1)
	}
	fim := inicio.AddDate(0, 0, 6)
	return fmt.Sprintf("Semana %d (%s a %s)", semana, inicio.Format("02/01"), fim.Format("02/01"))
}
