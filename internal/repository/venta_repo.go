package repository

import (
	"kosteo-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(venta *model.Venta) error
	FindAll() ([]model.Venta, error)
	FindByID(id uuid.UUID) (*model.Venta, error)
	FindRecent(limit int) ([]model.Venta, error)
	Update(venta *model.Venta) error
	Delete(id uuid.UUID) (int64, error)
}

type ventaRepo struct {
	db *gorm.DB
}

func NewVentaRepo(db *gorm.DB) VentaRepository {
	return &ventaRepo{db}
}

func (r *ventaRepo) Create(venta *model.Venta) error {
	return r.db.Create(venta).Error
}

func (r *ventaRepo) FindAll() ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.Order("date DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByID(id uuid.UUID) (*model.Venta, error) {
	var venta model.Venta
	err := r.db.First(&venta, "id = ?", id).Error
	return &venta, err
}

func (r *ventaRepo) FindRecent(limit int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.Order("created_at DESC").Limit(limit).Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Update(venta *model.Venta) error {
	return r.db.Save(venta).Error
}

func (r *ventaRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Venta{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
