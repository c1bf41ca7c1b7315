package usuario

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	Atualizar(db *gorm.DB, u *Usuario) error
	Deletar(db *gorm.DB, id uint) error
	Contar(db *gorm.DB) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error) {
	var u Usuario
	err := db.Where("login = ?", login).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var list []Usuario
	err := db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&Usuario{}).Count(&n).Error
	return n, err
}
