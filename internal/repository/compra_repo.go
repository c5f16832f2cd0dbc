package repository

import (
	"kosteo-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	Create(compra *model.Compra) error
	FindAll() ([]model.Compra, error)
	FindByID(id uuid.UUID) (*model.Compra, error)
	FindRecent(limit int) ([]model.Compra, error)
	Update(compra *model.Compra) error
	Delete(id uuid.UUID) (int64, error)
}

type compraRepo struct {
	db *gorm.DB
}

func NewCompraRepo(db *gorm.DB) CompraRepository {
	return &compraRepo{db}
}

func (r *compraRepo) Create(compra *model.Compra) error {
	return r.db.Create(compra).Error
}

func (r *compraRepo) FindAll() ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.Order("date DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) FindByID(id uuid.UUID) (*model.Compra, error) {
	var compra model.Compra
	err := r.db.First(&compra, "id = ?", id).Error
	return &compra, err
}

func (r *compraRepo) FindRecent(limit int) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.Order("created_at DESC").Limit(limit).Find(&compras).Error
	return compras, err
}

func (r *compraRepo) Update(compra *model.Compra) error {
	return r.db.Save(compra).Error
}

func (r *compraRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Compra{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
