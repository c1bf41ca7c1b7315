package ordem

import (
	"fmt"
	"strings"
	"time"
)

// ErroValidacao cobre os erros de salvamento checados antes de qualquer
// mutação: o salvamento é tudo-ou-nada.
type ErroValidacao struct {
	Mensagem string
}

func (e *ErroValidacao) Error() string {
	return e.Mensagem
}

func novoErroValidacao(format string, args ...any) error {
	return &ErroValidacao{Mensagem: fmt.Sprintf(format, args...)}
}

// ValidarSalvamento valida um lote de itens de uma mesma O.R antes de gravar.
// Checa cabeçalho obrigatório, descrição de item, formato da data de entrega
// e duplicidade de numeroItem dentro do cluster.
func ValidarSalvamento(itens []Ordem) error {
	if len(itens) == 0 {
		return novoErroValidacao("a O.R precisa de ao menos um item")
	}

	vistos := map[string]bool{}
	for i, item := range itens {
		if strings.TrimSpace(item.OR) == "" {
			return novoErroValidacao("o número da O.R é obrigatório")
		}
		if item.OR != itens[0].OR {
			return novoErroValidacao("todos os itens devem pertencer à O.R %s", itens[0].OR)
		}
		if strings.TrimSpace(item.Cliente) == "" {
			return novoErroValidacao("o cliente é obrigatório")
		}
		if strings.TrimSpace(item.Item) == "" {
			return novoErroValidacao("o item %d está sem descrição", i+1)
		}
		if _, err := time.Parse("2006-01-02", item.DataEntrega); err != nil {
			return novoErroValidacao("data de entrega inválida no item %d (esperado YYYY-MM-DD)", i+1)
		}
		num := strings.TrimSpace(item.NumeroItem)
		if num != "" {
			if vistos[num] {
				return novoErroValidacao("número de item %q duplicado na O.R %s", num, item.OR)
			}
			vistos[num] = true
		}
	}
	return nil
}
