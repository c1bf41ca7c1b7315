package ordem

import (
	"github.com/VisualPrintBR/api-pcp/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, o *Ordem) error
	SalvarLote(db *gorm.DB, itens []Ordem) error
	ListarTodas(db *gorm.DB) ([]Ordem, error)
	BuscarPorID(db *gorm.DB, id uint) (*Ordem, error)
	BuscarPorOR(db *gorm.DB, or string) ([]Ordem, error)
	Atualizar(db *gorm.DB, o *Ordem) error
	AtualizarCabecalho(db *gorm.DB, or string, cab Cabecalho, entradas map[uint]models.HistoricoEntry) error
	Deletar(db *gorm.DB, id uint) error
	DeletarLote(db *gorm.DB, ids []uint) error
}

// Cabecalho são os campos comuns a todos os itens de um cluster.
type Cabecalho struct {
	Cliente    string            `json:"cliente"`
	Vendedor   string            `json:"vendedor"`
	Prioridade models.Prioridade `json:"prioridade"`
	Observacao string            `json:"observacao"`
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *Ordem) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) SalvarLote(db *gorm.DB, itens []Ordem) error {
	return db.Create(&itens).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Ordem, error) {
	var list []Ordem
	err := db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Ordem, error) {
	var o Ordem
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) BuscarPorOR(db *gorm.DB, or string) ([]Ordem, error) {
	var list []Ordem
	err := db.Where("or_numero = ?", or).Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Ordem) error {
	return db.Save(o).Error
}

// AtualizarCabecalho propaga os campos de cabeçalho a todos os itens do
// cluster na mesma transação, anexando a cada item sua entrada de histórico
// sintética. É o ponto que reconcilia divergências de cabeçalho.
func (r *repositoryImpl) AtualizarCabecalho(db *gorm.DB, or string, cab Cabecalho, entradas map[uint]models.HistoricoEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var itens []Ordem
		if err := tx.Where("or_numero = ?", or).Find(&itens).Error; err != nil {
			return err
		}
		if len(itens) == 0 {
			return gorm.ErrRecordNotFound
		}
		for i := range itens {
			itens[i].Cliente = cab.Cliente
			itens[i].Vendedor = cab.Vendedor
			itens[i].Prioridade = cab.Prioridade
			itens[i].Observacao = cab.Observacao
			if entrada, ok := entradas[itens[i].ID]; ok {
				itens[i].Historico = append(itens[i].Historico, entrada)
			}
			if err := tx.Save(&itens[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Ordem{}, id).Error
}

func (r *repositoryImpl) DeletarLote(db *gorm.DB, ids []uint) error {
	return db.Delete(&Ordem{}, ids).Error
}
