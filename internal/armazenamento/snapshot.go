// Package armazenamento monta a carga inicial do painel em uma única
// resposta. Quando o banco falha ou estoura o prazo, a última carga boa é
// servida do cache em memória com a flag degradado ligada.
package armazenamento

import (
	"context"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/auditoria"
	"github.com/VisualPrintBR/api-pcp/internal/cache"
	"github.com/VisualPrintBR/api-pcp/internal/configuracao"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/VisualPrintBR/api-pcp/internal/usuario"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const chaveSnapshot = "snapshot"

// Snapshot é o estado completo que o painel precisa para abrir.
type Snapshot struct {
	Ordens        []ordem.Ordem               `json:"ordens"`
	Usuarios      []usuario.Usuario           `json:"usuarios"`
	Configuracoes []configuracao.Configuracao `json:"configuracoes"`
	Logs          []auditoria.RegistroGlobal  `json:"logs"`
	Degradado     bool                        `json:"degradado"`
}

// Carregador busca todas as coleções em paralelo, com prazo fixo.
type Carregador struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Timeout time.Duration

	RepoOrdens  ordem.Repository
	RepoUsers   usuario.Repository
	RepoConfigs configuracao.Repository
	RepoLogs    auditoria.Repository

	ultimoBom *cache.EmMemoria[Snapshot]
}

func NewCarregador(db *gorm.DB, logger *zap.Logger, timeout, ttl time.Duration) *Carregador {
	return &Carregador{
		DB:          db,
		Logger:      logger,
		Timeout:     timeout,
		RepoOrdens:  ordem.NewRepository(),
		RepoUsers:   usuario.NewRepository(),
		RepoConfigs: configuracao.NewRepository(),
		RepoLogs:    auditoria.NewRepository(),
		ultimoBom:   cache.New[Snapshot](ttl),
	}
}

// Carregar devolve o snapshot atual. Em caso de falha ou estouro do prazo,
// devolve o último snapshot bom com Degradado=true; se nem isso existir,
// propaga o erro.
func (c *Carregador) Carregar(ctx context.Context) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	snap, err := c.buscar(ctx)
	if err != nil {
		c.Logger.Warn("carga completa falhou, tentando snapshot em cache", zap.Error(err))
		if antigo, ok := c.ultimoBom.Get(chaveSnapshot); ok {
			antigo.Degradado = true
			return antigo, nil
		}
		return Snapshot{}, err
	}

	c.ultimoBom.Set(chaveSnapshot, snap)
	return snap, nil
}

func (c *Carregador) buscar(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	db := c.DB.WithContext(ctx)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Ordens, err = c.RepoOrdens.ListarTodas(db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Usuarios, err = c.RepoUsers.ListarTodos(db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Configuracoes, err = c.RepoConfigs.ListarTodas(db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Logs, err = c.RepoLogs.ListarTodos(db)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
