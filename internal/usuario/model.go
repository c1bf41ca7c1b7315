package usuario

import (
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
)

// Usuario é um operador do painel. O setor define em quais etapas ele pode
// atuar (Geral e administradores atuam em todas).
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome    string       `json:"nome"`
	Login   string       `gorm:"uniqueIndex" json:"login"`
	Senha   string       `json:"-"`
	IsAdmin bool         `json:"isAdmin"`
	Setor   models.Etapa `json:"setor"`

	PrecisaRedefinirSenha bool `json:"precisaRedefinirSenha"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
