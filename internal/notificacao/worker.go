package notificacao

import (
	"context"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Worker roda a varredura de alertas uma vez na partida e depois a cada
// intervalo (60s por padrão). Só adiciona dados; nunca toca nas ordens.
type Worker struct {
	DB        *gorm.DB
	Repo      Repository
	RepoOrdem ordem.Repository
	Logger    *zap.Logger
	Intervalo time.Duration
}

func NewWorker(db *gorm.DB, logger *zap.Logger, intervalo time.Duration) *Worker {
	return &Worker{
		DB:        db,
		Repo:      NewRepository(),
		RepoOrdem: ordem.NewRepository(),
		Logger:    logger,
		Intervalo: intervalo,
	}
}

// Executar bloqueia até o contexto encerrar.
func (w *Worker) Executar(ctx context.Context) error {
	w.varrer()

	ticker := time.NewTicker(w.Intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.varrer()
		}
	}
}

func (w *Worker) varrer() {
	agora := time.Now()
	hoje := agora.Format("2006-01-02")

	ordens, err := w.RepoOrdem.ListarTodas(w.DB)
	if err != nil {
		w.Logger.Error("varredura de alertas: falha ao carregar ordens", zap.Error(err))
		return
	}
	existentes, err := w.Repo.Listar(w.DB)
	if err != nil {
		w.Logger.Error("varredura de alertas: falha ao carregar notificações", zap.Error(err))
		return
	}

	ids := make(map[string]bool, len(existentes))
	for _, n := range existentes {
		ids[n.ID] = true
	}

	novas := VarrerAlertas(ordens, hoje, ids, agora)
	if err := w.Repo.SalvarLote(w.DB, novas); err != nil {
		w.Logger.Error("varredura de alertas: falha ao gravar", zap.Error(err))
		return
	}
	if err := w.Repo.PodarExcedentes(w.DB, Teto); err != nil {
		w.Logger.Error("varredura de alertas: falha ao podar excedentes", zap.Error(err))
	}

	w.Logger.Info("varredura de alertas concluída",
		zap.Int("ordens", len(ordens)),
		zap.Int("novos_alertas", len(novas)),
	)
}
