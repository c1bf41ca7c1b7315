package models

// Convenção de status textual das etapas de produção.
// Os valores legados existem em dados antigos mas nenhum motor os produz:
// "atrasada" é sempre derivada de dataEntrega < hoje, nunca gravada.
type Status string

const (
	StatusPendente   Status = "Pendente"
	StatusEmProducao Status = "Em Produção"
	StatusConcluido  Status = "Concluído"

	// Legados
	StatusAtrasado Status = "Atrasado"
	StatusExcluido Status = "Excluído"
)

// Etapa identifica um setor da produção. A ordem de EtapasProducao é
// significativa: define as colunas do Kanban e a "etapa atual" de um item.
type Etapa string

const (
	EtapaPreImpressao Etapa = "preImpressao"
	EtapaImpressao    Etapa = "impressao"
	EtapaProducao     Etapa = "producao"
	EtapaInstalacao   Etapa = "instalacao"
	EtapaExpedicao    Etapa = "expedicao"

	// Pseudo-etapa: usuários do setor Geral podem atuar em qualquer etapa,
	// e entradas de histórico sem setor usam este valor.
	EtapaGeral Etapa = "Geral"
)

// EtapasProducao são as cinco etapas reais, na ordem do fluxo.
var EtapasProducao = []Etapa{
	EtapaPreImpressao,
	EtapaImpressao,
	EtapaProducao,
	EtapaInstalacao,
	EtapaExpedicao,
}

var nomesEtapas = map[Etapa]string{
	EtapaPreImpressao: "Pré-Impressão",
	EtapaImpressao:    "Impressão",
	EtapaProducao:     "Produção",
	EtapaInstalacao:   "Instalação",
	EtapaExpedicao:    "Expedição",
	EtapaGeral:        "Geral",
}

// Nome devolve o rótulo de exibição da etapa.
func (e Etapa) Nome() string {
	if n, ok := nomesEtapas[e]; ok {
		return n
	}
	return string(e)
}

// EtapaValida diz se e é uma das cinco etapas de produção.
func EtapaValida(e Etapa) bool {
	for _, etapa := range EtapasProducao {
		if etapa == e {
			return true
		}
	}
	return false
}

// PodeAlterarEtapa é o predicado de permissão por setor: admins e o setor
// Geral alteram qualquer etapa; os demais, apenas a própria.
func PodeAlterarEtapa(isAdmin bool, setor, etapa Etapa) bool {
	return isAdmin || setor == EtapaGeral || setor == etapa
}

type Prioridade string

const (
	PrioridadeAlta  Prioridade = "Alta"
	PrioridadeMedia Prioridade = "Media"
	PrioridadeBaixa Prioridade = "Baixa"
)
