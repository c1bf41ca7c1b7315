package db

import (
	"fmt"

	"github.com/VisualPrintBR/api-pcp/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão gorm com o Postgres a partir da configuração.
func Conectar(cfg *config.Config) (*gorm.DB, error) {
	sslMode := " sslmode=disable"
	if cfg.DBSSL {
		sslMode = ""
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.DBHost, cfg.DBUsuario, cfg.DBSenha, cfg.DBNome, cfg.DBPorta, sslMode)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	return database, nil
}
