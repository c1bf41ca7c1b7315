package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VisualPrintBR/api-pcp/internal/armazenamento"
	"github.com/VisualPrintBR/api-pcp/internal/auditoria"
	"github.com/VisualPrintBR/api-pcp/internal/auth"
	"github.com/VisualPrintBR/api-pcp/internal/config"
	"github.com/VisualPrintBR/api-pcp/internal/configuracao"
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"github.com/VisualPrintBR/api-pcp/internal/notificacao"
	"github.com/VisualPrintBR/api-pcp/internal/observabilidade"
	"github.com/VisualPrintBR/api-pcp/internal/ordem"
	"github.com/VisualPrintBR/api-pcp/internal/painel"
	"github.com/VisualPrintBR/api-pcp/internal/usuario"
	"github.com/VisualPrintBR/api-pcp/internal/utils"
	"github.com/VisualPrintBR/api-pcp/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Carregar()

	logger := observabilidade.NovoLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := auth.Configurar(cfg.JWTSecret, cfg.JWTTTL); err != nil {
		logger.Fatal("configuração de auth inválida", zap.Error(err))
	}

	conexao, err := db.Conectar(cfg)
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := conexao.AutoMigrate(
		&ordem.Ordem{},
		&usuario.Usuario{},
		&notificacao.Notificacao{},
		&auditoria.RegistroGlobal{},
		&configuracao.Configuracao{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	if err := seedAdmin(conexao, cfg, logger); err != nil {
		logger.Fatal("erro no seed do admin", zap.Error(err))
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conexao)
	ordemHandler := ordem.NewHandler(conexao)
	painelHandler := painel.NewHandler(conexao)
	notificacaoHandler := notificacao.NewHandler(conexao)
	auditoriaHandler := auditoria.NewHandler(conexao)
	configuracaoHandler := configuracao.NewHandler(conexao)

	carregador := armazenamento.NewCarregador(conexao, logger, cfg.TimeoutCarga, cfg.TTLCache)
	cargaHandler := armazenamento.NewHandler(carregador)

	// Router
	r := mux.NewRouter()
	r.Use(observabilidade.MiddlewareLog(logger))

	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/carregar", cargaHandler.Carregar).Methods("GET")

	api.HandleFunc("/ordens", ordemHandler.Criar).Methods("POST")
	api.HandleFunc("/ordens", ordemHandler.Listar).Methods("GET")
	api.HandleFunc("/ordens/or/{or}", ordemHandler.AtualizarCabecalho).Methods("PUT")
	api.HandleFunc("/ordens/{id}", ordemHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/ordens/{id}", ordemHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/ordens/{id}/etapas/{etapa}", ordemHandler.Transicionar).Methods("PATCH")
	api.HandleFunc("/ordens/{id}/arquivar", ordemHandler.Arquivar).Methods("POST")
	api.HandleFunc("/ordens/{id}/reativar", ordemHandler.Reativar).Methods("POST")

	api.HandleFunc("/painel/resumo", painelHandler.Resumo).Methods("GET")
	api.HandleFunc("/painel/semanas", painelHandler.Semanas).Methods("GET")
	api.HandleFunc("/painel/kanban", painelHandler.Kanban).Methods("GET")

	api.HandleFunc("/notificacoes", notificacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/notificacoes", notificacaoHandler.EnviarAlerta).Methods("POST")
	api.HandleFunc("/notificacoes/lidas", notificacaoHandler.MarcarTodasLidas).Methods("POST")
	api.HandleFunc("/notificacoes/{id}/lida", notificacaoHandler.MarcarLida).Methods("POST")

	// Rotas de admin
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/ordens", ordemHandler.DeletarLote).Methods("DELETE")
	admin.HandleFunc("/ordens/{id}", ordemHandler.Deletar).Methods("DELETE")

	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")
	admin.HandleFunc("/usuarios/{id}/redefinir-senha", usuarioHandler.RedefinirSenha).Methods("POST")

	admin.HandleFunc("/auditoria", auditoriaHandler.Listar).Methods("GET")
	admin.HandleFunc("/configuracoes", configuracaoHandler.Listar).Methods("GET")
	admin.HandleFunc("/configuracoes", configuracaoHandler.Definir).Methods("PUT")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Porta),
		Handler: c.Handler(r),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := notificacao.NewWorker(conexao, logger, cfg.IntervaloAlertas)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("servidor iniciado", zap.Int("porta", cfg.Porta))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return worker.Executar(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("encerrado com erro", zap.Error(err))
	}
	logger.Info("encerrado")
}

// seedAdmin cria o primeiro usuário administrador quando a base está vazia
// e as credenciais foram informadas via ambiente.
func seedAdmin(conexao *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	if cfg.AdminLogin == "" || cfg.AdminSenha == "" {
		return nil
	}

	repo := usuario.NewRepository()
	n, err := repo.Contar(conexao)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := utils.HashSenha(cfg.AdminSenha)
	if err != nil {
		return err
	}
	admin := usuario.Usuario{
		Nome:    "Administrador",
		Login:   cfg.AdminLogin,
		Senha:   hash,
		IsAdmin: true,
		Setor:   models.EtapaGeral,
	}
	if err := repo.Salvar(conexao, &admin); err != nil {
		return err
	}
	logger.Info("usuário administrador criado", zap.String("login", cfg.AdminLogin))
	return nil
}
