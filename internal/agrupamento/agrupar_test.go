package agrupamento

import (
	"testing"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(or, numeroItem, dataEntrega string, arquivada bool) ordem.Ordem {
	o := ordem.NovaOrdem(or, numeroItem, "Cliente", "Vendedor", "Item", 1, models.PrioridadeMedia, "", dataEntrega)
	o.Arquivada = arquivada
	return o
}

func TestCompararNatural(t *testing.T) {
	casos := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"A2", "A10", -1},
		{"item-9", "item-11", -1},
		{"1", "1", 0},
		{"", "1", -1},
		{"abc", "abd", -1},
		{"2a", "2b", -1},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, CompararNatural(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}

func TestDataAncora(t *testing.T) {
	t.Run("mínimo das ativas", func(t *testing.T) {
		itens := []ordem.Ordem{
			item("50", "1", "2024-05-01", true),
			item("50", "2", "2024-05-03", false),
			item("50", "3", "2024-05-02", false),
		}
		assert.Equal(t, "2024-05-02", DataAncora(itens))
	})

	t.Run("máximo quando todas arquivadas", func(t *testing.T) {
		itens := []ordem.Ordem{
			item("50", "1", "2024-05-01", true),
			item("50", "2", "2024-05-03", true),
		}
		assert.Equal(t, "2024-05-03", DataAncora(itens))
	})
}

func TestClustersOrdenaItensNaturalmente(t *testing.T) {
	ordens := []ordem.Ordem{
		item("50", "10", "2024-05-01", false),
		item("50", "2", "2024-05-01", false),
		item("50", "1", "2024-05-01", false),
	}
	clusters := Clusters(ordens)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0].Itens, 3)
	assert.Equal(t, "1", clusters[0].Itens[0].NumeroItem)
	assert.Equal(t, "2", clusters[0].Itens[1].NumeroItem)
	assert.Equal(t, "10", clusters[0].Itens[2].NumeroItem)
}

func TestAgruparParaExibicao(t *testing.T) {
	hoje := time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC) // terça, semana ISO 20

	ordens := []ordem.Ordem{
		item("101", "1", "2024-05-13", false), // semana 20, segunda
		item("102", "1", "2024-05-13", false), // mesmo dia, empate por O.R desc
		item("103", "1", "2024-05-16", false), // semana 20, quinta
		item("104", "1", "2024-05-22", false), // semana 21
	}

	semanas := AgruparParaExibicao(ordens, Asc, hoje)
	require.Len(t, semanas, 2)

	assert.Equal(t, "2024-W20", semanas[0].ID)
	assert.True(t, semanas[0].Atual)
	assert.Equal(t, "2024-W21", semanas[1].ID)
	assert.False(t, semanas[1].Atual)

	require.Len(t, semanas[0].Dias, 2)
	assert.Equal(t, "2024-05-13", semanas[0].Dias[0].Data)
	assert.Equal(t, "Segunda-feira", semanas[0].Dias[0].NomeDia)
	assert.Equal(t, "2024-05-16", semanas[0].Dias[1].Data)

	// Empate de âncora no mesmo dia: O.R descendente.
	dia := semanas[0].Dias[0]
	require.Len(t, dia.Clusters, 2)
	assert.Equal(t, "102", dia.Clusters[0].OR)
	assert.Equal(t, "101", dia.Clusters[1].OR)
}

func TestSemanasSempreAscendentesMesmoComDirecaoDesc(t *testing.T) {
	hoje := time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC)
	ordens := []ordem.Ordem{
		item("101", "1", "2024-05-13", false),
		item("104", "1", "2024-05-22", false),
	}
	semanas := AgruparParaExibicao(ordens, Desc, hoje)
	require.Len(t, semanas, 2)
	assert.Equal(t, "2024-W20", semanas[0].ID)
	assert.Equal(t, "2024-W21", semanas[1].ID)
}

func TestAgruparParaExibicaoIdempotente(t *testing.T) {
	hoje := time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC)
	ordens := []ordem.Ordem{
		item("101", "2", "2024-05-13", false),
		item("101", "1", "2024-05-14", true),
		item("102", "1", "2024-05-16", false),
	}
	copia := make([]ordem.Ordem, len(ordens))
	copy(copia, ordens)

	primeira := AgruparParaExibicao(ordens, Asc, hoje)
	segunda := AgruparParaExibicao(ordens, Asc, hoje)

	assert.Equal(t, primeira, segunda)
	// A entrada não é mutada (nem reordenada).
	assert.Equal(t, copia, ordens)
}

func TestSemanaISOAncoradaNaQuinta(t *testing.T) {
	hoje := time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC)
	// 01/01/2021 é sexta: pertence à semana 53 de 2020 na regra ISO.
	semanas := AgruparParaExibicao([]ordem.Ordem{item("1", "1", "2021-01-01", false)}, Asc, hoje)
	require.Len(t, semanas, 1)
	assert.Equal(t, "2020-W53", semanas[0].ID)
}
