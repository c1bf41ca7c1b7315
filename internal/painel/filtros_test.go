package painel

import (
	"testing"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaOrdem(or, cliente, dataEntrega string, arquivada bool) ordem.Ordem {
	o := ordem.NovaOrdem(or, "1", cliente, "Vendedor", "Item genérico", 1, models.PrioridadeMedia, "", dataEntrega)
	o.Arquivada = arquivada
	return o
}

func TestFiltrarPorAba(t *testing.T) {
	ordens := []ordem.Ordem{
		novaOrdem("1", "A", "2024-05-01", false),
		novaOrdem("2", "B", "2024-05-01", true),
	}
	ativas := FiltrarPorAba(ordens, AbaOperacional)
	require.Len(t, ativas, 1)
	assert.Equal(t, "1", ativas[0].OR)

	arquivadas := FiltrarPorAba(ordens, AbaConcluidas)
	require.Len(t, arquivadas, 1)
	assert.Equal(t, "2", arquivadas[0].OR)
}

func TestFiltrarPorBusca(t *testing.T) {
	ordens := []ordem.Ordem{
		novaOrdem("112050", "Padaria Central", "2024-05-15", false),
		novaOrdem("99", "Mercado do João", "2024-05-20", false),
	}

	t.Run("por número de O.R", func(t *testing.T) {
		res := FiltrarPorBusca(ordens, "112050")
		require.Len(t, res, 1)
		assert.Equal(t, "112050", res[0].OR)
	})

	t.Run("case-insensitive no cliente", func(t *testing.T) {
		res := FiltrarPorBusca(ordens, "padaria")
		require.Len(t, res, 1)
		assert.Equal(t, "Padaria Central", res[0].Cliente)
	})

	t.Run("pela data formatada em DD/MM/YYYY", func(t *testing.T) {
		res := FiltrarPorBusca(ordens, "20/05/2024")
		require.Len(t, res, 1)
		assert.Equal(t, "99", res[0].OR)
	})

	t.Run("termo vazio devolve tudo", func(t *testing.T) {
		assert.Len(t, FiltrarPorBusca(ordens, "  "), 2)
	})

	t.Run("sem correspondência", func(t *testing.T) {
		assert.Empty(t, FiltrarPorBusca(ordens, "inexistente"))
	})
}

func TestFiltrarRapido(t *testing.T) {
	hoje := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	emProducao := novaOrdem("1", "A", "2024-05-20", false)
	emProducao.Impressao = models.StatusEmProducao
	atrasada := novaOrdem("2", "B", "2024-05-14", false)
	atrasadaArquivada := novaOrdem("3", "C", "2024-05-10", true)
	normal := novaOrdem("4", "D", "2024-05-16", false)

	ordens := []ordem.Ordem{emProducao, atrasada, atrasadaArquivada, normal}

	t.Run("TODAS é no-op", func(t *testing.T) {
		assert.Len(t, FiltrarRapido(ordens, FiltroTodas, hoje), 4)
	})

	t.Run("PRODUCAO", func(t *testing.T) {
		res := FiltrarRapido(ordens, FiltroProducao, hoje)
		require.Len(t, res, 1)
		assert.Equal(t, "1", res[0].OR)
	})

	t.Run("ATRASADAS ignora arquivadas", func(t *testing.T) {
		res := FiltrarRapido(ordens, FiltroAtrasadas, hoje)
		require.Len(t, res, 1)
		assert.Equal(t, "2", res[0].OR)
	})
}

func TestFiltrarPorSetor(t *testing.T) {
	a := novaOrdem("1", "A", "2024-05-01", false)
	a.Producao = models.StatusEmProducao
	b := novaOrdem("2", "B", "2024-05-01", false)
	b.Producao = models.StatusConcluido

	res := FiltrarPorSetor([]ordem.Ordem{a, b}, models.EtapaProducao)
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].OR)

	// Etapa inválida não filtra nada.
	assert.Len(t, FiltrarPorSetor([]ordem.Ordem{a, b}, models.EtapaGeral), 2)
}

func TestCalcularResumo(t *testing.T) {
	hoje := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	ontem := novaOrdem("1", "A", "2024-05-14", false)
	hojeMesmo := novaOrdem("2", "B", "2024-05-15", false)
	amanha := novaOrdem("3", "C", "2024-05-16", false)
	amanha.Instalacao = models.StatusEmProducao
	arquivadaVencida := novaOrdem("4", "D", "2024-05-01", true)

	r := CalcularResumo([]ordem.Ordem{ontem, hojeMesmo, amanha, arquivadaVencida}, hoje)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.Atrasadas) // só a de ontem
	assert.Equal(t, 1, r.EmAndamento)
}

func TestFormatarDataBR(t *testing.T) {
	assert.Equal(t, "15/05/2024", FormatarDataBR("2024-05-15"))
	assert.Equal(t, "sem-data", FormatarDataBR("sem-data"))
}
