package service

import (
	"errors"
	"fmt"

	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"
	"kosteo-api/pkg/database"
	"kosteo-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductRequest uses pointers for numeric fields so that an explicit
// zero is distinguishable from a missing field.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	SKU      string   `json:"sku" validate:"required"`
	UnitCost *float64 `json:"unit_cost" validate:"required,min=0"`
	PVP      *float64 `json:"pvp" validate:"required,min=0"`
	Stock    *int     `json:"stock" validate:"omitempty,min=0"`
}

// UpdateProductRequest carries full-update semantics: all required fields
// must be present again.
type UpdateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	SKU      string   `json:"sku" validate:"required"`
	UnitCost *float64 `json:"unit_cost" validate:"required,min=0"`
	PVP      *float64 `json:"pvp" validate:"required,min=0"`
	Stock    *int     `json:"stock" validate:"omitempty,min=0"`
}

type CatalogService interface {
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Fast path for the common duplicate; the unique index still backstops
	// concurrent creates.
	if existing, err := s.productRepo.FindBySKU(req.SKU); err == nil && existing.ID != uuid.Nil {
		return nil, fmt.Errorf("%w: SKU already exists", ErrConflict)
	}

	product := &model.Product{
		Name:     req.Name,
		SKU:      req.SKU,
		UnitCost: *req.UnitCost,
		PVP:      *req.PVP,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Create(product); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: SKU already exists", ErrConflict)
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.UnitCost = *req.UnitCost
	existing.PVP = *req.PVP
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}

	if err := s.productRepo.Update(existing); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: SKU already exists", ErrConflict)
		}
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: product not found", ErrNotFound)
	}
	return nil
}
