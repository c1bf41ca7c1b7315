package auditoria

import "time"

// Ações destrutivas que não deixam rastro na própria entidade.
const (
	AcaoDeleteOrder = "DELETE_ORDER"
	AcaoDeleteUser  = "DELETE_USER"
)

// RegistroGlobal é a trilha append-only de ações destrutivas, independente
// do histórico das ordens (que morre junto com elas).
type RegistroGlobal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Acao        string    `gorm:"index" json:"acao"`
	UsuarioID   uint      `json:"usuarioId"`
	UsuarioNome string    `json:"usuarioNome"`
	Detalhe     string    `json:"detalhe"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

func (RegistroGlobal) TableName() string {
	return "registros_globais"
}
