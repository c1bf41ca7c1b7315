package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPodeAlterarEtapa(t *testing.T) {
	casos := []struct {
		nome    string
		isAdmin bool
		setor   Etapa
		etapa   Etapa
		want    bool
	}{
		{"admin de outro setor", true, EtapaImpressao, EtapaExpedicao, true},
		{"setor Geral", false, EtapaGeral, EtapaProducao, true},
		{"setor da própria etapa", false, EtapaInstalacao, EtapaInstalacao, true},
		{"setor alheio", false, EtapaImpressao, EtapaProducao, false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.want, PodeAlterarEtapa(c.isAdmin, c.setor, c.etapa))
		})
	}
}

func TestEtapaValida(t *testing.T) {
	for _, e := range EtapasProducao {
		assert.True(t, EtapaValida(e))
	}
	assert.False(t, EtapaValida(EtapaGeral))
	assert.False(t, EtapaValida(Etapa("inexistente")))
}

func TestOrdemDasEtapas(t *testing.T) {
	// A ordem do fluxo é fixa e significativa.
	assert.Equal(t, []Etapa{EtapaPreImpressao, EtapaImpressao, EtapaProducao, EtapaInstalacao, EtapaExpedicao}, EtapasProducao)
}
