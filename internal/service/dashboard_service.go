package service

import (
	"sort"
	"time"

	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"

	"github.com/google/uuid"
)

const (
	chartMonths    = 6
	recentActivity = 5
)

// DashboardStats summarizes the whole catalog and both transaction logs.
type DashboardStats struct {
	TotalProducts      int     `json:"totalProducts"`
	InventoryValueCost float64 `json:"inventoryValueCost"`
	InventoryValuePvp  float64 `json:"inventoryValuePvp"`
	TotalVentasCount   int     `json:"totalVentasCount"`
	TotalVentasValue   float64 `json:"totalVentasValue"`
	TotalComprasCount  int     `json:"totalComprasCount"`
	TotalComprasValue  float64 `json:"totalComprasValue"`
}

// MonthlyPoint is one calendar-month bucket of the trailing series.
type MonthlyPoint struct {
	Name    string  `json:"name"`
	Ventas  float64 `json:"ventas"`
	Compras float64 `json:"compras"`
}

type ActivityType string

const (
	ActivityVenta  ActivityType = "VENTA"
	ActivityCompra ActivityType = "COMPRA"
)

// ActivityEntry is one row of the merged recent-activity feed.
type ActivityEntry struct {
	ID           uuid.UUID               `json:"id"`
	Type         ActivityType            `json:"type"`
	ProductName  string                  `json:"product_name"`
	Counterparty string                  `json:"counterparty"`
	Quantity     int                     `json:"quantity"`
	Total        float64                 `json:"total"`
	Status       model.TransactionStatus `json:"status"`
	Date         time.Time               `json:"date"`
}

type DashboardSummary struct {
	Stats          DashboardStats  `json:"stats"`
	ChartData      []MonthlyPoint  `json:"chartData"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}

// DashboardService recomputes the summary from full collection scans on
// every call. There is no caching and no partial result: any read error
// fails the whole aggregation.
type DashboardService interface {
	GetSummary() (*DashboardSummary, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	ventaRepo   repository.VentaRepository
	compraRepo  repository.CompraRepository
	now         func() time.Time
}

func NewDashboardService(productRepo repository.ProductRepository, ventaRepo repository.VentaRepository, compraRepo repository.CompraRepository) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		ventaRepo:   ventaRepo,
		compraRepo:  compraRepo,
		now:         time.Now,
	}
}

func (s *dashboardService) GetSummary() (*DashboardSummary, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	ventas, err := s.ventaRepo.FindAll()
	if err != nil {
		return nil, err
	}
	compras, err := s.compraRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Stats:          buildStats(products, ventas, compras),
		ChartData:      buildChartData(ventas, compras, s.now()),
		RecentActivity: buildRecentActivity(ventas, compras, recentActivity),
	}, nil
}

func buildStats(products []model.Product, ventas []model.Venta, compras []model.Compra) DashboardStats {
	stats := DashboardStats{
		TotalProducts:     len(products),
		TotalVentasCount:  len(ventas),
		TotalComprasCount: len(compras),
	}
	for _, p := range products {
		stats.InventoryValueCost += p.UnitCost * float64(p.Stock)
		stats.InventoryValuePvp += p.PVP * float64(p.Stock)
	}
	for _, v := range ventas {
		stats.TotalVentasValue += v.TotalPrice
	}
	for _, c := range compras {
		stats.TotalComprasValue += c.TotalCost
	}
	return stats
}

// buildChartData buckets both logs into the six calendar months ending at
// now's month, oldest first. A record belongs to the bucket whose
// [first-of-month, first-of-next-month) window contains its date.
func buildChartData(ventas []model.Venta, compras []model.Compra, now time.Time) []MonthlyPoint {
	points := make([]MonthlyPoint, 0, chartMonths)

	for i := chartMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		point := MonthlyPoint{Name: start.Format("Jan")}

		for _, v := range ventas {
			if inWindow(v.Date, start, end) {
				point.Ventas += v.TotalPrice
			}
		}
		for _, c := range compras {
			if inWindow(c.Date, start, end) {
				point.Compras += c.TotalCost
			}
		}
		points = append(points, point)
	}
	return points
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// buildRecentActivity merges both logs into a single feed, newest first,
// capped at limit entries.
func buildRecentActivity(ventas []model.Venta, compras []model.Compra, limit int) []ActivityEntry {
	entries := make([]ActivityEntry, 0, len(ventas)+len(compras))

	for _, v := range ventas {
		entries = append(entries, ActivityEntry{
			ID:           v.ID,
			Type:         ActivityVenta,
			ProductName:  v.ProductName,
			Counterparty: v.Client,
			Quantity:     v.Quantity,
			Total:        v.TotalPrice,
			Status:       v.Status,
			Date:         v.Date,
		})
	}
	for _, c := range compras {
		entries = append(entries, ActivityEntry{
			ID:           c.ID,
			Type:         ActivityCompra,
			ProductName:  c.ProductName,
			Counterparty: c.Supplier,
			Quantity:     c.Quantity,
			Total:        c.TotalCost,
			Status:       c.Status,
			Date:         c.Date,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
