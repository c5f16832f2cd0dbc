package service

import (
	"kosteo-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeProductRepo struct {
	products   []model.Product
	created    []*model.Product
	createErr  error
	findAllErr error
	recentErr  error
	updated    []*model.Product
	updateErr  error
	deleted    []uuid.UUID
	deleteRows int64
}

func (r *fakeProductRepo) Create(p *model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	return r.products, r.findAllErr
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].SKU == sku {
			return &r.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) FindRecent(limit int) ([]model.Product, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if len(r.products) > limit {
		return r.products[:limit], nil
	}
	return r.products, nil
}

func (r *fakeProductRepo) Update(p *model.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, p)
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) (int64, error) {
	r.deleted = append(r.deleted, id)
	return r.deleteRows, nil
}

type fakeVentaRepo struct {
	ventas     []model.Venta
	created    []*model.Venta
	findAllErr error
	recentErr  error
	updated    []*model.Venta
	deleteRows int64
}

func (r *fakeVentaRepo) Create(v *model.Venta) error {
	r.created = append(r.created, v)
	return nil
}

func (r *fakeVentaRepo) FindAll() ([]model.Venta, error) {
	return r.ventas, r.findAllErr
}

func (r *fakeVentaRepo) FindByID(id uuid.UUID) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			return &r.ventas[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVentaRepo) FindRecent(limit int) ([]model.Venta, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if len(r.ventas) > limit {
		return r.ventas[:limit], nil
	}
	return r.ventas, nil
}

func (r *fakeVentaRepo) Update(v *model.Venta) error {
	r.updated = append(r.updated, v)
	return nil
}

func (r *fakeVentaRepo) Delete(id uuid.UUID) (int64, error) {
	return r.deleteRows, nil
}

type fakeCompraRepo struct {
	compras    []model.Compra
	created    []*model.Compra
	findAllErr error
	recentErr  error
	updated    []*model.Compra
	deleteRows int64
}

func (r *fakeCompraRepo) Create(c *model.Compra) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCompraRepo) FindAll() ([]model.Compra, error) {
	return r.compras, r.findAllErr
}

func (r *fakeCompraRepo) FindByID(id uuid.UUID) (*model.Compra, error) {
	for i := range r.compras {
		if r.compras[i].ID == id {
			return &r.compras[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCompraRepo) FindRecent(limit int) ([]model.Compra, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if len(r.compras) > limit {
		return r.compras[:limit], nil
	}
	return r.compras, nil
}

func (r *fakeCompraRepo) Update(c *model.Compra) error {
	r.updated = append(r.updated, c)
	return nil
}

func (r *fakeCompraRepo) Delete(id uuid.UUID) (int64, error) {
	return r.deleteRows, nil
}

type fakeUserRepo struct {
	users       []model.User
	created     []*model.User
	createErr   error
	updated     []*model.User
	updateErr   error
	deleteRows  int64
	lastQuery   string
	lastOffset  int
	lastLimit   int
	searchTotal int64
}

func (r *fakeUserRepo) Create(u *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Search(query string, offset, limit int) ([]model.User, int64, error) {
	r.lastQuery = query
	r.lastOffset = offset
	r.lastLimit = limit
	return r.users, r.searchTotal, nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, u)
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) (int64, error) {
	return r.deleteRows, nil
}
