package ordem

import (
	"testing"

	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemValido(or, numeroItem string) Ordem {
	return NovaOrdem(or, numeroItem, "Cliente X", "Vendedor Y", "Adesivo de vitrine", 1, models.PrioridadeBaixa, "", "2024-06-01")
}

func TestValidarSalvamento(t *testing.T) {
	t.Run("lote válido", func(t *testing.T) {
		assert.NoError(t, ValidarSalvamento([]Ordem{itemValido("100", "1"), itemValido("100", "2")}))
	})

	t.Run("lote vazio", func(t *testing.T) {
		assert.Error(t, ValidarSalvamento(nil))
	})

	t.Run("sem número de O.R", func(t *testing.T) {
		o := itemValido("", "1")
		assert.Error(t, ValidarSalvamento([]Ordem{o}))
	})

	t.Run("sem cliente", func(t *testing.T) {
		o := itemValido("100", "1")
		o.Cliente = "  "
		assert.Error(t, ValidarSalvamento([]Ordem{o}))
	})

	t.Run("item sem descrição", func(t *testing.T) {
		o := itemValido("100", "1")
		o.Item = ""
		err := ValidarSalvamento([]Ordem{o})
		var val *ErroValidacao
		require.ErrorAs(t, err, &val)
	})

	t.Run("data de entrega inválida", func(t *testing.T) {
		o := itemValido("100", "1")
		o.DataEntrega = "15/05/2024"
		assert.Error(t, ValidarSalvamento([]Ordem{o}))
	})

	t.Run("numeroItem duplicado no cluster", func(t *testing.T) {
		err := ValidarSalvamento([]Ordem{itemValido("100", "3"), itemValido("100", "3")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicado")
	})

	t.Run("numeroItem vazio não conta como duplicado", func(t *testing.T) {
		assert.NoError(t, ValidarSalvamento([]Ordem{itemValido("100", ""), itemValido("100", "")}))
	})

	t.Run("itens de O.Rs diferentes no mesmo lote", func(t *testing.T) {
		assert.Error(t, ValidarSalvamento([]Ordem{itemValido("100", "1"), itemValido("200", "2")}))
	})
}
