package auditoria

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Registrar(db *gorm.DB, acao string, usuarioID uint, usuarioNome, detalhe string) error
	ListarTodos(db *gorm.DB) ([]RegistroGlobal, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Registrar(db *gorm.DB, acao string, usuarioID uint, usuarioNome, detalhe string) error {
	reg := RegistroGlobal{
		Acao:        acao,
		UsuarioID:   usuarioID,
		UsuarioNome: usuarioNome,
		Detalhe:     detalhe,
		Timestamp:   time.Now(),
	}
	return db.Create(&reg).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]RegistroGlobal, error) {
	var list []RegistroGlobal
	err := db.Order("timestamp desc").Find(&list).Error
	return list, err
}
