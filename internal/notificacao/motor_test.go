package notificacao

import (
	"fmt"
	"testing"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ordemComEntrega(id uint, dataEntrega string, arquivada bool) ordem.Ordem {
	o := ordem.NovaOrdem("500", "1", "Cliente", "Vendedor", "Item", 1, models.PrioridadeMedia, "", dataEntrega)
	o.ID = id
	o.Arquivada = arquivada
	return o
}

func TestVarrerAlertas(t *testing.T) {
	agora := time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC)
	hoje := "2024-05-15"

	ordens := []ordem.Ordem{
		ordemComEntrega(1, "2024-05-15", false), // entrega hoje
		ordemComEntrega(2, "2024-05-10", false), // atrasada
		ordemComEntrega(3, "2024-05-20", false), // futura: nada
		ordemComEntrega(4, "2024-05-01", true),  // arquivada: nada
	}

	novas := VarrerAlertas(ordens, hoje, map[string]bool{}, agora)
	require.Len(t, novas, 2)

	assert.Equal(t, "hoje-1-2024-05-15", novas[0].ID)
	assert.Equal(t, TipoAviso, novas[0].Tipo)
	assert.Equal(t, TargetTodos, novas[0].TargetUserID)

	assert.Equal(t, "atraso-2-2024-05-15", novas[1].ID)
	assert.Equal(t, TipoUrgente, novas[1].Tipo)
	assert.Equal(t, "2024-05-10", novas[1].ReferenceDate)
}

func TestVarrerAlertasDedupe(t *testing.T) {
	agora := time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC)
	hoje := "2024-05-15"
	ordens := []ordem.Ordem{
		ordemComEntrega(1, "2024-05-15", false),
		ordemComEntrega(2, "2024-05-10", false),
	}

	ids := map[string]bool{}
	primeira := VarrerAlertas(ordens, hoje, ids, agora)
	require.Len(t, primeira, 2)

	// Revarrer no mesmo minuto com o conjunto vigente não duplica nada.
	segunda := VarrerAlertas(ordens, hoje, ids, agora.Add(time.Minute))
	assert.Empty(t, segunda)

	vistos := map[string]bool{}
	for _, n := range primeira {
		assert.False(t, vistos[n.ID])
		vistos[n.ID] = true
	}
}

func TestMesclarComTeto(t *testing.T) {
	var existentes []Notificacao
	for i := 0; i < Teto; i++ {
		existentes = append(existentes, Notificacao{ID: fmt.Sprintf("antiga-%d", i)})
	}
	novas := []Notificacao{{ID: "nova-1"}, {ID: "nova-2"}}

	mescla := MesclarComTeto(existentes, novas, Teto)
	require.Len(t, mescla, Teto)
	// Novas na frente, evicção das mais antigas pelo fim.
	assert.Equal(t, "nova-1", mescla[0].ID)
	assert.Equal(t, "nova-2", mescla[1].ID)
	assert.Equal(t, "antiga-0", mescla[2].ID)
	assert.Equal(t, fmt.Sprintf("antiga-%d", Teto-3), mescla[Teto-1].ID)
}

func TestVisiveisPara(t *testing.T) {
	lista := []Notificacao{
		{ID: "a", Tipo: TipoInfo, TargetUserID: TargetTodos},
		{ID: "b", Tipo: TipoUrgente, TargetUserID: TargetTodos},
		{ID: "c", Tipo: TipoAviso, TargetUserID: "7"},
		{ID: "d", Tipo: TipoAviso, TargetUserID: "9"},
		{ID: "e", Tipo: TipoUrgente, TargetUserID: TargetTodos, LidaPor: []string{"7"}},
		{ID: "f", Tipo: TipoSucesso, TargetUserID: TargetTodos},
	}

	visiveis := VisiveisPara(lista, "7")
	require.Len(t, visiveis, 4)

	// Severidade decrescente: urgent, warning, success, info.
	assert.Equal(t, "b", visiveis[0].ID)
	assert.Equal(t, "c", visiveis[1].ID)
	assert.Equal(t, "f", visiveis[2].ID)
	assert.Equal(t, "a", visiveis[3].ID)
}

func TestVisivelParaLidaNaoReaparece(t *testing.T) {
	n := Notificacao{ID: "a", TargetUserID: TargetTodos, LidaPor: []string{"7"}}
	assert.False(t, n.VisivelPara("7"))
	// Outros usuários continuam vendo.
	assert.True(t, n.VisivelPara("8"))
}
