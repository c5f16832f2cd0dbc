package service

import (
	"errors"
	"fmt"
	"time"

	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"
	"kosteo-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateVentaRequest struct {
	Client      string                   `json:"client" validate:"required"`
	ProductName string                   `json:"product_name" validate:"required"`
	Quantity    *int                     `json:"quantity" validate:"required,min=1"`
	UnitPrice   *float64                 `json:"unit_price" validate:"required,min=0"`
	Status      *model.TransactionStatus `json:"status" validate:"omitempty,oneof=Pendiente Completado Cancelado"`
}

// UpdateVentaRequest has partial-update semantics: every field is optional
// and validated independently when present.
type UpdateVentaRequest struct {
	Client      *string                  `json:"client" validate:"omitempty,min=1"`
	ProductName *string                  `json:"product_name" validate:"omitempty,min=1"`
	Quantity    *int                     `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice   *float64                 `json:"unit_price" validate:"omitempty,min=0"`
	Status      *model.TransactionStatus `json:"status" validate:"omitempty,oneof=Pendiente Completado Cancelado"`
}

type CreateCompraRequest struct {
	Supplier    string                   `json:"supplier" validate:"required"`
	ProductName string                   `json:"product_name" validate:"required"`
	Quantity    *int                     `json:"quantity" validate:"required,min=1"`
	UnitCost    *float64                 `json:"unit_cost" validate:"required,min=0"`
	Status      *model.TransactionStatus `json:"status" validate:"omitempty,oneof=Pendiente Completado Cancelado"`
}

type UpdateCompraRequest struct {
	Supplier    *string                  `json:"supplier" validate:"omitempty,min=1"`
	ProductName *string                  `json:"product_name" validate:"omitempty,min=1"`
	Quantity    *int                     `json:"quantity" validate:"omitempty,min=1"`
	UnitCost    *float64                 `json:"unit_cost" validate:"omitempty,min=0"`
	Status      *model.TransactionStatus `json:"status" validate:"omitempty,oneof=Pendiente Completado Cancelado"`
}

// TransactionService covers the venta and compra logs. Totals are derived on
// every write: changing only quantity pulls the stored unit price (and vice
// versa) before recomputing.
type TransactionService interface {
	CreateVenta(req *CreateVentaRequest) (*model.Venta, error)
	GetAllVentas() ([]model.Venta, error)
	GetVentaByID(id uuid.UUID) (*model.Venta, error)
	UpdateVenta(id uuid.UUID, req *UpdateVentaRequest) (*model.Venta, error)
	DeleteVenta(id uuid.UUID) error

	CreateCompra(req *CreateCompraRequest) (*model.Compra, error)
	GetAllCompras() ([]model.Compra, error)
	GetCompraByID(id uuid.UUID) (*model.Compra, error)
	UpdateCompra(id uuid.UUID, req *UpdateCompraRequest) (*model.Compra, error)
	DeleteCompra(id uuid.UUID) error
}

type transactionService struct {
	ventaRepo  repository.VentaRepository
	compraRepo repository.CompraRepository
	now        func() time.Time
}

func NewTransactionService(ventaRepo repository.VentaRepository, compraRepo repository.CompraRepository) TransactionService {
	return &transactionService{
		ventaRepo:  ventaRepo,
		compraRepo: compraRepo,
		now:        time.Now,
	}
}

func (s *transactionService) CreateVenta(req *CreateVentaRequest) (*model.Venta, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	venta := &model.Venta{
		Client:      req.Client,
		ProductName: req.ProductName,
		Quantity:    *req.Quantity,
		UnitPrice:   *req.UnitPrice,
		TotalPrice:  float64(*req.Quantity) * *req.UnitPrice,
		Date:        s.now(),
		Status:      model.StatusCompletado,
	}
	if req.Status != nil {
		venta.Status = *req.Status
	}

	if err := s.ventaRepo.Create(venta); err != nil {
		return nil, err
	}
	return venta, nil
}

func (s *transactionService) GetAllVentas() ([]model.Venta, error) {
	return s.ventaRepo.FindAll()
}

func (s *transactionService) GetVentaByID(id uuid.UUID) (*model.Venta, error) {
	venta, err := s.ventaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: venta not found", ErrNotFound)
		}
		return nil, err
	}
	return venta, nil
}

func (s *transactionService) UpdateVenta(id uuid.UUID, req *UpdateVentaRequest) (*model.Venta, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetVentaByID(id)
	if err != nil {
		return nil, err
	}

	if req.Client != nil {
		existing.Client = *req.Client
	}
	if req.ProductName != nil {
		existing.ProductName = *req.ProductName
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		existing.UnitPrice = *req.UnitPrice
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	existing.TotalPrice = float64(existing.Quantity) * existing.UnitPrice

	if err := s.ventaRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *transactionService) DeleteVenta(id uuid.UUID) error {
	affected, err := s.ventaRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: venta not found", ErrNotFound)
	}
	return nil
}

func (s *transactionService) CreateCompra(req *CreateCompraRequest) (*model.Compra, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	compra := &model.Compra{
		Supplier:    req.Supplier,
		ProductName: req.ProductName,
		Quantity:    *req.Quantity,
		UnitCost:    *req.UnitCost,
		TotalCost:   float64(*req.Quantity) * *req.UnitCost,
		Date:        s.now(),
		Status:      model.StatusPendiente,
	}
	if req.Status != nil {
		compra.Status = *req.Status
	}

	if err := s.compraRepo.Create(compra); err != nil {
		return nil, err
	}
	return compra, nil
}

func (s *transactionService) GetAllCompras() ([]model.Compra, error) {
	return s.compraRepo.FindAll()
}

func (s *transactionService) GetCompraByID(id uuid.UUID) (*model.Compra, error) {
	compra, err := s.compraRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: compra not found", ErrNotFound)
		}
		return nil, err
	}
	return compra, nil
}

func (s *transactionService) UpdateCompra(id uuid.UUID, req *UpdateCompraRequest) (*model.Compra, error) {
	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetCompraByID(id)
	if err != nil {
		return nil, err
	}

	if req.Supplier != nil {
		existing.Supplier = *req.Supplier
	}
	if req.ProductName != nil {
		existing.ProductName = *req.ProductName
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.UnitCost != nil {
		existing.UnitCost = *req.UnitCost
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	existing.TotalCost = float64(existing.Quantity) * existing.UnitCost

	if err := s.compraRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *transactionService) DeleteCompra(id uuid.UUID) error {
	affected, err := s.compraRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: compra not found", ErrNotFound)
	}
	return nil
}
