package ordem

import (
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
)

// Ordem é um item de O.R. Vários registros podem compartilhar o mesmo
// número de O.R ("or"); esse conjunto é o cluster da ordem. Os campos de
// cabeçalho (cliente, vendedor, prioridade, observação) devem ser iguais em
// todos os itens do cluster — a edição em lote propaga e reconcilia.
type Ordem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// "or" é palavra reservada em SQL; a coluna é or_numero.
	OR         string `gorm:"column:or_numero;index" json:"or"`
	NumeroItem string `json:"numeroItem"`

	Cliente    string            `json:"cliente"`
	Vendedor   string            `json:"vendedor"`
	Item       string            `json:"item"`
	Quantidade int               `json:"quantidade"`
	Prioridade models.Prioridade `json:"prioridade"`
	Observacao string            `json:"observacao"`

	// Data de entrega no formato YYYY-MM-DD (comparável lexicograficamente).
	DataEntrega string `gorm:"index" json:"dataEntrega"`

	PreImpressao models.Status `json:"preImpressao"`
	Impressao    models.Status `json:"impressao"`
	Producao     models.Status `json:"producao"`
	Instalacao   models.Status `json:"instalacao"`
	Expedicao    models.Status `json:"expedicao"`

	Arquivada   bool       `gorm:"index" json:"arquivada"`
	ArquivadaEm *time.Time `json:"arquivadaEm,omitempty"`

	Historico []models.HistoricoEntry `gorm:"type:jsonb;serializer:json" json:"historico"`
	Anexos    []models.Anexo          `gorm:"type:jsonb;serializer:json" json:"anexos"`
}

func (Ordem) TableName() string {
	return "ordens"
}

// StatusEtapa lê o status de uma das cinco etapas.
func (o *Ordem) StatusEtapa(e models.Etapa) models.Status {
	switch e {
	case models.EtapaPreImpressao:
		return o.PreImpressao
	case models.EtapaImpressao:
		return o.Impressao
	case models.EtapaProducao:
		return o.Producao
	case models.EtapaInstalacao:
		return o.Instalacao
	case models.EtapaExpedicao:
		return o.Expedicao
	}
	return ""
}

// DefinirStatusEtapa grava o status de uma das cinco etapas.
func (o *Ordem) DefinirStatusEtapa(e models.Etapa, s models.Status) {
	switch e {
	case models.EtapaPreImpressao:
		o.PreImpressao = s
	case models.EtapaImpressao:
		o.Impressao = s
	case models.EtapaProducao:
		o.Producao = s
	case models.EtapaInstalacao:
		o.Instalacao = s
	case models.EtapaExpedicao:
		o.Expedicao = s
	}
}

// EmProducaoEmAlgumaEtapa diz se alguma das cinco etapas está Em Produção.
func (o *Ordem) EmProducaoEmAlgumaEtapa() bool {
	for _, e := range models.EtapasProducao {
		if o.StatusEtapa(e) == models.StatusEmProducao {
			return true
		}
	}
	return false
}

// NovaOrdem monta um item recém-criado: cinco etapas pendentes, sem
// histórico, não arquivado.
func NovaOrdem(or, numeroItem, cliente, vendedor, item string, quantidade int, prioridade models.Prioridade, observacao, dataEntrega string) Ordem {
	return Ordem{
		OR:           or,
		NumeroItem:   numeroItem,
		Cliente:      cliente,
		Vendedor:     vendedor,
		Item:         item,
		Quantidade:   quantidade,
		Prioridade:   prioridade,
		Observacao:   observacao,
		DataEntrega:  dataEntrega,
		PreImpressao: models.StatusPendente,
		Impressao:    models.StatusPendente,
		Producao:     models.StatusPendente,
		Instalacao:   models.StatusPendente,
		Expedicao:    models.StatusPendente,
		Historico:    []models.HistoricoEntry{},
		Anexos:       []models.Anexo{},
	}
}
