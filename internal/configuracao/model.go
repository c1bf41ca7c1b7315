package configuracao

import "time"

// Configuracao é um par chave/valor de preferências globais do painel
// (aparência, textos e afins). O valor é opaco para o servidor.
type Configuracao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Chave string `gorm:"uniqueIndex" json:"chave"`
	Valor string `gorm:"type:text" json:"valor"`
}

func (Configuracao) TableName() string {
	return "configuracoes"
}
