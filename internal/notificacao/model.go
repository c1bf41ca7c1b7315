package notificacao

import (
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
)

// Tipo (severidade) do alerta.
type Tipo string

const (
	TipoUrgente Tipo = "urgent"
	TipoAviso   Tipo = "warning"
	TipoInfo    Tipo = "info"
	TipoSucesso Tipo = "success"
)

// Severidade para ordenação: urgent > warning > success > info.
func (t Tipo) Severidade() int {
	switch t {
	case TipoUrgente:
		return 3
	case TipoAviso:
		return 2
	case TipoSucesso:
		return 1
	}
	return 0
}

// TargetTodos marca um alerta broadcast.
const TargetTodos = "ALL"

// Teto de alertas retidos; além dele os mais antigos são descartados.
const Teto = 50

// Tipos da ação embutida num alerta. Variante etiquetada no lugar do
// metadata dinâmico: o handler da ação faz switch exaustivo sobre o tipo.
const (
	AcaoNenhuma        = "nenhuma"
	AcaoRedefinirSenha = "redefinirSenha"
)

// Acao é o payload tipado de um alerta acionável.
type Acao struct {
	Tipo  string `json:"tipo"`
	Login string `json:"login,omitempty"`
}

// Notificacao é um alerta efêmero. O id é a chave de dedupe: determinístico
// (ordem+data) nos gerados pelo sistema, uuid nos manuais.
type Notificacao struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	Titulo        string       `json:"titulo"`
	Mensagem      string       `json:"mensagem"`
	Tipo          Tipo         `json:"tipo"`
	Timestamp     time.Time    `gorm:"index" json:"timestamp"`
	LidaPor       []string     `gorm:"type:jsonb;serializer:json" json:"lidaPor"`
	TargetUserID  string       `json:"targetUserId"`
	TargetSetor   models.Etapa `json:"targetSetor,omitempty"`
	ReferenceDate string       `json:"referenceDate,omitempty"`
	Acao          Acao         `gorm:"type:jsonb;serializer:json" json:"acao"`
}

func (Notificacao) TableName() string {
	return "notificacoes"
}

// VisivelPara diz se o usuário ainda deve ver o alerta.
func (n *Notificacao) VisivelPara(userID string) bool {
	if n.TargetUserID != TargetTodos && n.TargetUserID != userID {
		return false
	}
	for _, id := range n.LidaPor {
		if id == userID {
			return false
		}
	}
	return true
}
