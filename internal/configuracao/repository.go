package configuracao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Configuracao, error)
	Definir(db *gorm.DB, chave, valor string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Configuracao, error) {
	var list []Configuracao
	err := db.Order("chave").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Definir(db *gorm.DB, chave, valor string) error {
	c := Configuracao{Chave: chave, Valor: valor}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&c).Error
}
