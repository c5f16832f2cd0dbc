package service

import (
	"errors"
	"testing"
	"time"

	"kosteo-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

func ventaOn(date time.Time, total float64) model.Venta {
	return model.Venta{
		BaseModel:   model.BaseModel{ID: uuid.New()},
		Client:      "Cliente",
		ProductName: "Widget",
		Quantity:    1,
		UnitPrice:   total,
		TotalPrice:  total,
		Date:        date,
		Status:      model.StatusCompletado,
	}
}

func compraOn(date time.Time, total float64) model.Compra {
	return model.Compra{
		BaseModel:   model.BaseModel{ID: uuid.New()},
		Supplier:    "Proveedor",
		ProductName: "Widget",
		Quantity:    1,
		UnitCost:    total,
		TotalCost:   total,
		Date:        date,
		Status:      model.StatusPendiente,
	}
}

func newDashboardForTest(products *fakeProductRepo, ventas *fakeVentaRepo, compras *fakeCompraRepo) *dashboardService {
	svc := NewDashboardService(products, ventas, compras).(*dashboardService)
	svc.now = fixedNow
	return svc
}

func TestDashboard_Stats(t *testing.T) {
	products := &fakeProductRepo{products: []model.Product{
		{Name: "A", SKU: "A-1", UnitCost: 10, PVP: 25, Stock: 4},
		{Name: "B", SKU: "B-1", UnitCost: 2.5, PVP: 5, Stock: 10},
	}}
	ventas := &fakeVentaRepo{ventas: []model.Venta{
		ventaOn(fixedNow(), 100),
		ventaOn(fixedNow(), 50),
	}}
	compras := &fakeCompraRepo{compras: []model.Compra{
		compraOn(fixedNow(), 30),
	}}

	summary, err := newDashboardForTest(products, ventas, compras).GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Stats.TotalProducts)
	assert.InDelta(t, 65.0, summary.Stats.InventoryValueCost, 1e-9) // 10*4 + 2.5*10
	assert.InDelta(t, 150.0, summary.Stats.InventoryValuePvp, 1e-9) // 25*4 + 5*10
	assert.Equal(t, 2, summary.Stats.TotalVentasCount)
	assert.InDelta(t, 150.0, summary.Stats.TotalVentasValue, 1e-9)
	assert.Equal(t, 1, summary.Stats.TotalComprasCount)
	assert.InDelta(t, 30.0, summary.Stats.TotalComprasValue, 1e-9)
}

func TestDashboard_ChartDataBucketsSixMonths(t *testing.T) {
	// Records spanning 7 months; the oldest falls outside the window.
	ventas := &fakeVentaRepo{ventas: []model.Venta{
		ventaOn(time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC), 999), // excluded
		ventaOn(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 100),     // first instant
		ventaOn(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC), 40),  // last instant
		ventaOn(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), 70),
		ventaOn(time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC), 25),
	}}
	compras := &fakeCompraRepo{compras: []model.Compra{
		compraOn(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), 500), // excluded
		compraOn(time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC), 60),
		compraOn(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), 15),
	}}

	summary, err := newDashboardForTest(&fakeProductRepo{}, ventas, compras).GetSummary()
	require.NoError(t, err)
	require.Len(t, summary.ChartData, 6)

	names := make([]string, 0, 6)
	for _, p := range summary.ChartData {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}, names)

	assert.InDelta(t, 140.0, summary.ChartData[0].Ventas, 1e-9)
	assert.InDelta(t, 0.0, summary.ChartData[0].Compras, 1e-9)
	assert.InDelta(t, 60.0, summary.ChartData[1].Compras, 1e-9)
	assert.InDelta(t, 70.0, summary.ChartData[3].Ventas, 1e-9)
	assert.InDelta(t, 0.0, summary.ChartData[4].Ventas, 1e-9)
	assert.InDelta(t, 25.0, summary.ChartData[5].Ventas, 1e-9)
	assert.InDelta(t, 15.0, summary.ChartData[5].Compras, 1e-9)
}

func TestDashboard_RecentActivityMergesAndCaps(t *testing.T) {
	base := fixedNow()
	ventas := &fakeVentaRepo{ventas: []model.Venta{
		ventaOn(base.Add(-1*time.Hour), 10),
		ventaOn(base.Add(-3*time.Hour), 20),
		ventaOn(base.Add(-5*time.Hour), 30),
		ventaOn(base.Add(-7*time.Hour), 40),
	}}
	compras := &fakeCompraRepo{compras: []model.Compra{
		compraOn(base.Add(-2*time.Hour), 50),
		compraOn(base.Add(-4*time.Hour), 60),
		compraOn(base.Add(-6*time.Hour), 70),
	}}

	summary, err := newDashboardForTest(&fakeProductRepo{}, ventas, compras).GetSummary()
	require.NoError(t, err)
	require.Len(t, summary.RecentActivity, 5)

	types := make([]ActivityType, 0, 5)
	for i, entry := range summary.RecentActivity {
		types = append(types, entry.Type)
		if i > 0 {
			assert.True(t, summary.RecentActivity[i-1].Date.After(entry.Date),
				"activity must be strictly descending by date")
		}
	}
	assert.Equal(t, []ActivityType{ActivityVenta, ActivityCompra, ActivityVenta, ActivityCompra, ActivityVenta}, types)
}

func TestDashboard_RecentActivityShorterThanCap(t *testing.T) {
	ventas := &fakeVentaRepo{ventas: []model.Venta{ventaOn(fixedNow(), 10)}}
	compras := &fakeCompraRepo{compras: []model.Compra{compraOn(fixedNow().Add(-time.Hour), 20)}}

	summary, err := newDashboardForTest(&fakeProductRepo{}, ventas, compras).GetSummary()
	require.NoError(t, err)
	assert.Len(t, summary.RecentActivity, 2)
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	summary, err := newDashboardForTest(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}).GetSummary()
	require.NoError(t, err)

	assert.Equal(t, DashboardStats{}, summary.Stats)
	require.Len(t, summary.ChartData, 6)
	for _, p := range summary.ChartData {
		assert.Zero(t, p.Ventas)
		assert.Zero(t, p.Compras)
	}
	assert.Empty(t, summary.RecentActivity)
}

func TestDashboard_ReadErrorFailsWhole(t *testing.T) {
	boom := errors.New("read failed")
	ventas := &fakeVentaRepo{findAllErr: boom}

	summary, err := newDashboardForTest(&fakeProductRepo{}, ventas, &fakeCompraRepo{}).GetSummary()
	assert.Nil(t, summary, "partial results must never be returned")
	assert.ErrorIs(t, err, boom)
}
