package notificacao

import (
	"fmt"
	"sort"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/VisualPrintBR/api-pcp/internal/painel"
)

// VarrerAlertas examina as ordens ativas e produz os alertas de entrega do
// dia (warning) e de atraso (urgent), ambos broadcast. O id embute ordem e
// data, então revarrer no mesmo dia é idempotente: ids já presentes em
// idsExistentes são descartados.
func VarrerAlertas(ordens []ordem.Ordem, hoje string, idsExistentes map[string]bool, agora time.Time) []Notificacao {
	var novas []Notificacao
	for _, o := range ordens {
		if o.Arquivada {
			continue
		}
		var n Notificacao
		switch {
		case o.DataEntrega == hoje:
			n = Notificacao{
				ID:       fmt.Sprintf("hoje-%d-%s", o.ID, hoje),
				Titulo:   "Entrega hoje",
				Mensagem: fmt.Sprintf("O.R %s (%s) tem entrega hoje (%s)", o.OR, o.Cliente, painel.FormatarDataBR(o.DataEntrega)),
				Tipo:     TipoAviso,
			}
		case o.DataEntrega < hoje:
			n = Notificacao{
				ID:       fmt.Sprintf("atraso-%d-%s", o.ID, hoje),
				Titulo:   "Entrega atrasada",
				Mensagem: fmt.Sprintf("O.R %s (%s) está atrasada desde %s", o.OR, o.Cliente, painel.FormatarDataBR(o.DataEntrega)),
				Tipo:     TipoUrgente,
			}
		default:
			continue
		}
		if idsExistentes[n.ID] {
			continue
		}
		n.Timestamp = agora
		n.LidaPor = []string{}
		n.TargetUserID = TargetTodos
		n.ReferenceDate = o.DataEntrega
		n.Acao = Acao{Tipo: AcaoNenhuma}
		novas = append(novas, n)
		idsExistentes[n.ID] = true
	}
	return novas
}

// MesclarComTeto põe as novas na frente e corta o excedente pelo fim
// (evicção FIFO das mais antigas). As listas chegam mais-recentes-primeiro.
func MesclarComTeto(existentes, novas []Notificacao, teto int) []Notificacao {
	mescla := make([]Notificacao, 0, len(novas)+len(existentes))
	mescla = append(mescla, novas...)
	mescla = append(mescla, existentes...)
	if len(mescla) > teto {
		mescla = mescla[:teto]
	}
	return mescla
}

// VisiveisPara filtra os alertas do usuário e ordena por severidade
// decrescente, estável no resto.
func VisiveisPara(lista []Notificacao, userID string) []Notificacao {
	var out []Notificacao
	for _, n := range lista {
		if n.VisivelPara(userID) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Tipo.Severidade() > out[b].Tipo.Severidade()
	})
	return out
}
