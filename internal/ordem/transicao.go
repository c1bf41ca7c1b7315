package ordem

import (
	"errors"
	"fmt"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/models"
)

var (
	// ErrSemAcao: no fluxo de avanço do Kanban, Concluído não tem ação.
	ErrSemAcao = errors.New("etapa já concluída, sem ação neste fluxo")

	ErrEtapaInvalida = errors.New("etapa inválida")
)

// ErroPermissao indica que o ator não pode alterar a etapa pedida.
type ErroPermissao struct {
	Etapa models.Etapa
}

func (e *ErroPermissao) Error() string {
	return fmt.Sprintf("restrito ao setor %s", e.Etapa.Nome())
}

// Ator é quem executa uma transição (derivado das claims da sessão).
type Ator struct {
	ID      uint
	Nome    string
	IsAdmin bool
	Setor   models.Etapa
}

// Pode aplica o predicado de permissão por setor.
func (a Ator) Pode(etapa models.Etapa) bool {
	return models.PodeAlterarEtapa(a.IsAdmin, a.Setor, etapa)
}

// Modo escolhe qual das duas regras de progressão observadas no sistema é
// aplicada. A tabela e o card usam o ciclo com wrap; o botão do Kanban só
// avança. As duas convivem de propósito, como operações nomeadas distintas.
type Modo string

const (
	ModoCiclo  Modo = "ciclo"
	ModoAvanco Modo = "avanco"
)

// ProximoStatusCiclo: Pendente → Em Produção → Concluído → Pendente.
func ProximoStatusCiclo(s models.Status) models.Status {
	switch s {
	case models.StatusPendente:
		return models.StatusEmProducao
	case models.StatusEmProducao:
		return models.StatusConcluido
	case models.StatusConcluido:
		return models.StatusPendente
	}
	// Status legado em dados antigos entra no ciclo pelo início.
	return models.StatusEmProducao
}

// ProximoStatusAvanco: Pendente → Em Produção (receber) e
// Em Produção → Concluído (avançar); Concluído não tem ação.
func ProximoStatusAvanco(s models.Status) (models.Status, error) {
	switch s {
	case models.StatusPendente:
		return models.StatusEmProducao, nil
	case models.StatusEmProducao:
		return models.StatusConcluido, nil
	case models.StatusConcluido:
		return "", ErrSemAcao
	}
	return models.StatusEmProducao, nil
}

// AplicarTransicao computa a ordem resultante de uma mudança de status de
// etapa. É pura: recebe e devolve por valor, nunca toca a entrada. Toda
// transição anexa exatamente uma entrada de histórico; concluir a expedição
// arquiva a ordem automaticamente.
func AplicarTransicao(o Ordem, etapa models.Etapa, ator Ator, modo Modo, agora time.Time) (Ordem, models.HistoricoEntry, error) {
	if !models.EtapaValida(etapa) {
		return o, models.HistoricoEntry{}, ErrEtapaInvalida
	}
	if !ator.Pode(etapa) {
		return o, models.HistoricoEntry{}, &ErroPermissao{Etapa: etapa}
	}

	atual := o.StatusEtapa(etapa)
	var novo models.Status
	switch modo {
	case ModoAvanco:
		n, err := ProximoStatusAvanco(atual)
		if err != nil {
			return o, models.HistoricoEntry{}, err
		}
		novo = n
	default:
		novo = ProximoStatusCiclo(atual)
	}

	entrada := models.HistoricoEntry{
		UsuarioID:   ator.ID,
		UsuarioNome: ator.Nome,
		Timestamp:   agora,
		Status:      novo,
		Setor:       etapa,
	}

	resultado := o
	resultado.Historico = anexarHistorico(o.Historico, entrada)
	resultado.DefinirStatusEtapa(etapa, novo)

	if etapa == models.EtapaExpedicao && novo == models.StatusConcluido {
		resultado.Arquivada = true
		t := agora
		resultado.ArquivadaEm = &t
	}

	return resultado, entrada, nil
}

// Reativar tira a ordem do arquivo: a expedição volta a Pendente e as demais
// etapas ficam como estavam. Gera entrada sintética no setor Geral.
func Reativar(o Ordem, ator Ator, agora time.Time) Ordem {
	entrada := models.HistoricoEntry{
		UsuarioID:   ator.ID,
		UsuarioNome: ator.Nome,
		Timestamp:   agora,
		Status:      models.StatusPendente,
		Setor:       models.EtapaGeral,
	}
	resultado := o
	resultado.Historico = anexarHistorico(o.Historico, entrada)
	resultado.Arquivada = false
	resultado.ArquivadaEm = nil
	resultado.Expedicao = models.StatusPendente
	return resultado
}

// Arquivar marca a ordem como concluída manualmente, sem mexer nas etapas.
func Arquivar(o Ordem, agora time.Time) Ordem {
	resultado := o
	resultado.Arquivada = true
	t := agora
	resultado.ArquivadaEm = &t
	return resultado
}

// EntradaEdicao é a entrada sintética "Dados Editados" anexada a cada item
// do cluster quando o cabeçalho da O.R é salvo em lote.
func EntradaEdicao(ator Ator, agora time.Time, statusVigente models.Status) models.HistoricoEntry {
	return models.HistoricoEntry{
		UsuarioID:   ator.ID,
		UsuarioNome: ator.Nome + " (Dados Editados)",
		Timestamp:   agora,
		Status:      statusVigente,
		Setor:       models.EtapaGeral,
	}
}

// anexarHistorico copia antes de anexar para que a ordem de entrada e a de
// saída nunca compartilhem o mesmo slice.
func anexarHistorico(h []models.HistoricoEntry, e models.HistoricoEntry) []models.HistoricoEntry {
	novo := make([]models.HistoricoEntry, len(h), len(h)+1)
	copy(novo, h)
	return append(novo, e)
}
