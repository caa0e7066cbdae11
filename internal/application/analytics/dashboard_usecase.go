// Package analytics contiene el resumen financiero del dashboard, calculado sobre el
// estado en memoria del tenant.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// SessionProvider entrega la sesión en memoria de un tenant. Lo implementa *session.Manager.
type SessionProvider interface {
	Session(ctx context.Context, ownerID string) (*session.Session, error)
}

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
// Sólo lee: las ventas anuladas no cuentan.
type DashboardUseCase struct {
	sessions SessionProvider
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sessions SessionProvider) *DashboardUseCase {
	return &DashboardUseCase{sessions: sessions, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

type snapshotView struct {
	sales     []entity.Sale
	products  []entity.Product
	customers []entity.Customer
	suppliers []entity.Supplier
	low       int
	cash      decimal.Decimal
}

// GetSummary construye el DashboardSummaryDTO del tenant.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string) (*dto.DashboardSummaryDTO, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var v snapshotView
	s.Read(func(l *ledger.Ledger) {
		v.sales = l.Sales()
		v.products = l.Products()
		v.customers = l.Customers()
		v.suppliers = l.Suppliers()
		v.low = len(l.LowStock())
		v.cash = l.CashBalance()
	})

	now := uc.now()
	// Hoy: 00:00 – 23:59:59.999; mes en curso: día 1 a las 00:00 – fin de hoy.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todaySales, todayCost := salesMetrics(v.sales, todayStart, todayEnd)
	monthSales, monthCost := salesMetrics(v.sales, monthStart, todayEnd)

	out := &dto.DashboardSummaryDTO{
		TodaySales:    todaySales.Round(2),
		TodayMargin:   todaySales.Sub(todayCost).Round(2),
		MonthlySales:  monthSales.Round(2),
		MonthlyMargin: monthSales.Sub(monthCost).Round(2),
		TopProducts:   topProducts(v.sales, v.products, monthStart, todayEnd, dashboardTopProducts),
		CashBalance:   v.cash.Round(2),
		Receivables:   decimal.Zero,
		Payables:      decimal.Zero,
		StockValue:    decimal.Zero,
		LowStock:      v.low,
		DateLabel:     monthLabel(now),
	}
	for _, c := range v.customers {
		out.Receivables = out.Receivables.Add(c.Debt)
	}
	for _, sp := range v.suppliers {
		out.Payables = out.Payables.Add(sp.Debt)
	}
	for _, p := range v.products {
		if !p.IsService() {
			out.StockValue = out.StockValue.Add(p.Quantity.Mul(p.Cost))
		}
	}
	out.StockValue = out.StockValue.Round(2)
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// salesMetrics ingresos y costo de las ventas activas del período.
func salesMetrics(sales []entity.Sale, from, to time.Time) (revenue, cost decimal.Decimal) {
	revenue, cost = decimal.Zero, decimal.Zero
	for _, s := range sales {
		if s.Status.IsDeleted() || !inRange(s.Date, from, to) {
			continue
		}
		revenue = revenue.Add(s.Total)
		for _, it := range s.Items {
			cost = cost.Add(it.Quantity.Mul(it.Cost))
		}
	}
	return revenue, cost
}

// topProducts productos con mayor ingreso en el período, de mayor a menor.
func topProducts(sales []entity.Sale, products []entity.Product, from, to time.Time, limit int) []dto.TopProductDTO {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	type acc struct {
		qty, revenue, cost decimal.Decimal
	}
	byProduct := map[string]*acc{}
	for _, s := range sales {
		if s.Status.IsDeleted() || !inRange(s.Date, from, to) {
			continue
		}
		for _, it := range s.Items {
			a, ok := byProduct[it.ProductID]
			if !ok {
				a = &acc{qty: decimal.Zero, revenue: decimal.Zero, cost: decimal.Zero}
				byProduct[it.ProductID] = a
			}
			a.qty = a.qty.Add(it.Quantity)
			a.revenue = a.revenue.Add(it.Quantity.Mul(it.Price))
			a.cost = a.cost.Add(it.Quantity.Mul(it.Cost))
		}
	}

	out := make([]dto.TopProductDTO, 0, len(byProduct))
	for id, a := range byProduct {
		out = append(out, dto.TopProductDTO{
			ProductID:        id,
			ProductName:      names[id],
			QuantitySold:     a.qty,
			TotalRevenue:     a.revenue.Round(2),
			MarginPercentage: pct(a.revenue.Sub(a.cost), a.revenue),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue); c != 0 {
			return c > 0
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
