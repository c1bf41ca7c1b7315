package notificacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB) ([]Notificacao, error)
	SalvarLote(db *gorm.DB, novas []Notificacao) error
	Criar(db *gorm.DB, n *Notificacao) error
	MarcarLida(db *gorm.DB, id, userID string) error
	MarcarTodasLidas(db *gorm.DB, userID string) error
	PodarExcedentes(db *gorm.DB, teto int) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar devolve todos os alertas, mais recentes primeiro.
func (r *repositoryImpl) Listar(db *gorm.DB) ([]Notificacao, error) {
	var list []Notificacao
	err := db.Order("timestamp desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) SalvarLote(db *gorm.DB, novas []Notificacao) error {
	if len(novas) == 0 {
		return nil
	}
	return db.Create(&novas).Error
}

func (r *repositoryImpl) Criar(db *gorm.DB, n *Notificacao) error {
	return db.Create(n).Error
}

// MarcarLida adiciona o usuário em lidaPor; nunca remove o alerta, os
// demais usuários continuam vendo.
func (r *repositoryImpl) MarcarLida(db *gorm.DB, id, userID string) error {
	var n Notificacao
	if err := db.First(&n, "id = ?", id).Error; err != nil {
		return err
	}
	for _, u := range n.LidaPor {
		if u == userID {
			return nil
		}
	}
	n.LidaPor = append(n.LidaPor, userID)
	return db.Save(&n).Error
}

// MarcarTodasLidas aplica MarcarLida a todos os alertas visíveis do usuário.
func (r *repositoryImpl) MarcarTodasLidas(db *gorm.DB, userID string) error {
	lista, err := r.Listar(db)
	if err != nil {
		return err
	}
	for _, n := range lista {
		if !n.VisivelPara(userID) {
			continue
		}
		if err := r.MarcarLida(db, n.ID, userID); err != nil {
			return err
		}
	}
	return nil
}

// PodarExcedentes remove os alertas mais antigos além do teto.
func (r *repositoryImpl) PodarExcedentes(db *gorm.DB, teto int) error {
	var ids []string
	err := db.Model(&Notificacao{}).
		Order("timestamp desc").
		Offset(teto).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return err
	}
	return db.Delete(&Notificacao{}, "id IN ?", ids).Error
}
