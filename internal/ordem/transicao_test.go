package ordem

import (
	"errors"
	"testing"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agora = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func ordemBase() Ordem {
	return NovaOrdem("112050", "1", "Padaria Central", "Marcos", "Banner 3x1m", 2, models.PrioridadeMedia, "", "2024-05-15")
}

func TestAplicarTransicaoPermissao(t *testing.T) {
	o := ordemBase()

	casos := []struct {
		nome    string
		ator    Ator
		etapa   models.Etapa
		permite bool
	}{
		{"admin altera qualquer etapa", Ator{ID: 1, Nome: "Ana", IsAdmin: true, Setor: models.EtapaImpressao}, models.EtapaInstalacao, true},
		{"setor Geral altera qualquer etapa", Ator{ID: 2, Nome: "Beto", Setor: models.EtapaGeral}, models.EtapaExpedicao, true},
		{"setor próprio", Ator{ID: 3, Nome: "Carla", Setor: models.EtapaImpressao}, models.EtapaImpressao, true},
		{"setor alheio", Ator{ID: 3, Nome: "Carla", Setor: models.EtapaImpressao}, models.EtapaProducao, false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			antes := o
			res, _, err := AplicarTransicao(o, c.etapa, c.ator, ModoCiclo, agora)
			if c.permite {
				require.NoError(t, err)
				assert.Equal(t, models.StatusEmProducao, res.StatusEtapa(c.etapa))
			} else {
				var perm *ErroPermissao
				require.ErrorAs(t, err, &perm)
				assert.Contains(t, perm.Error(), "restrito ao setor")
				// Estado intocado na recusa.
				assert.Equal(t, antes, res)
			}
			// A entrada nunca é mutada.
			assert.Equal(t, antes, o)
		})
	}
}

func TestCicloDeStatus(t *testing.T) {
	assert.Equal(t, models.StatusEmProducao, ProximoStatusCiclo(models.StatusPendente))
	assert.Equal(t, models.StatusConcluido, ProximoStatusCiclo(models.StatusEmProducao))
	assert.Equal(t, models.StatusPendente, ProximoStatusCiclo(models.StatusConcluido))
}

func TestAvancoDeStatus(t *testing.T) {
	s, err := ProximoStatusAvanco(models.StatusPendente)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmProducao, s)

	s, err = ProximoStatusAvanco(models.StatusEmProducao)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConcluido, s)

	_, err = ProximoStatusAvanco(models.StatusConcluido)
	assert.True(t, errors.Is(err, ErrSemAcao))
}

func TestTransicaoAnexaHistorico(t *testing.T) {
	o := ordemBase()
	ator := Ator{ID: 7, Nome: "Duda", Setor: models.EtapaGeral}

	res, entrada, err := AplicarTransicao(o, models.EtapaImpressao, ator, ModoCiclo, agora)
	require.NoError(t, err)

	require.Len(t, res.Historico, 1)
	assert.Equal(t, entrada, res.Historico[0])
	assert.Equal(t, uint(7), entrada.UsuarioID)
	assert.Equal(t, "Duda", entrada.UsuarioNome)
	assert.Equal(t, agora, entrada.Timestamp)
	assert.Equal(t, models.StatusEmProducao, entrada.Status)
	assert.Equal(t, models.EtapaImpressao, entrada.Setor)

	// Cada transição acresce exatamente uma entrada e preserva as anteriores.
	res2, _, err := AplicarTransicao(res, models.EtapaImpressao, ator, ModoCiclo, agora.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, res2.Historico, 2)
	assert.Equal(t, res.Historico[0], res2.Historico[0])
	assert.Len(t, res.Historico, 1)
}

func TestExpedicaoConcluidaArquiva(t *testing.T) {
	o := ordemBase()
	o.Expedicao = models.StatusEmProducao
	ator := Ator{ID: 1, Nome: "Ana", IsAdmin: true}

	res, _, err := AplicarTransicao(o, models.EtapaExpedicao, ator, ModoCiclo, agora)
	require.NoError(t, err)
	assert.True(t, res.Arquivada)
	require.NotNil(t, res.ArquivadaEm)
	assert.Equal(t, agora, *res.ArquivadaEm)
}

func TestOutrasTransicoesNaoArquivam(t *testing.T) {
	ator := Ator{ID: 1, Nome: "Ana", IsAdmin: true}

	// Concluir qualquer etapa que não a expedição não arquiva.
	for _, etapa := range models.EtapasProducao[:4] {
		o := ordemBase()
		o.DefinirStatusEtapa(etapa, models.StatusEmProducao)
		res, _, err := AplicarTransicao(o, etapa, ator, ModoCiclo, agora)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConcluido, res.StatusEtapa(etapa))
		assert.False(t, res.Arquivada, "etapa %s não deveria arquivar", etapa)
	}

	// Expedição saindo de Pendente (vira Em Produção) também não.
	o := ordemBase()
	res, _, err := AplicarTransicao(o, models.EtapaExpedicao, ator, ModoCiclo, agora)
	require.NoError(t, err)
	assert.False(t, res.Arquivada)
}

func TestCicloDesfazConclusaoComoEventoNormal(t *testing.T) {
	o := ordemBase()
	o.Producao = models.StatusConcluido
	ator := Ator{ID: 5, Nome: "Edu", Setor: models.EtapaProducao}

	res, entrada, err := AplicarTransicao(o, models.EtapaProducao, ator, ModoCiclo, agora)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendente, res.StatusEtapa(models.EtapaProducao))
	assert.Equal(t, models.StatusPendente, entrada.Status)
	assert.Len(t, res.Historico, 1)
}

func TestReativar(t *testing.T) {
	o := ordemBase()
	o.PreImpressao = models.StatusConcluido
	o.Impressao = models.StatusConcluido
	o.Producao = models.StatusConcluido
	o.Instalacao = models.StatusConcluido
	o.Expedicao = models.StatusConcluido
	o.Arquivada = true
	t0 := agora.Add(-time.Hour)
	o.ArquivadaEm = &t0

	res := Reativar(o, Ator{ID: 1, Nome: "Ana", IsAdmin: true}, agora)

	assert.False(t, res.Arquivada)
	assert.Nil(t, res.ArquivadaEm)
	assert.Equal(t, models.StatusPendente, res.Expedicao)
	// Demais etapas intactas.
	assert.Equal(t, models.StatusConcluido, res.PreImpressao)
	assert.Equal(t, models.StatusConcluido, res.Impressao)
	assert.Equal(t, models.StatusConcluido, res.Producao)
	assert.Equal(t, models.StatusConcluido, res.Instalacao)
	require.Len(t, res.Historico, 1)
	assert.Equal(t, models.EtapaGeral, res.Historico[0].Setor)
}

func TestTransicaoEtapaInvalida(t *testing.T) {
	o := ordemBase()
	_, _, err := AplicarTransicao(o, models.EtapaGeral, Ator{IsAdmin: true}, ModoCiclo, agora)
	assert.True(t, errors.Is(err, ErrEtapaInvalida))
}
