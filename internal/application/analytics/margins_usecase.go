package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

const (
	defaultTopN     = 20
	maxTopN         = 200
	paretoThreshold = 80 // el top ~20% de productos genera ~80% de ingresos
)

var (
	hundred  = decimal.NewFromInt(100)
	pareto80 = decimal.NewFromInt(paretoThreshold)
)

// MarginsUseCase calcula márgenes por forma de pago y el ranking de productos por margen
// bruto con el corte Pareto, sobre las ventas activas del período.
type MarginsUseCase struct {
	sessions SessionProvider
	now      func() time.Time
}

// NewMarginsUseCase construye el caso de uso.
func NewMarginsUseCase(sessions SessionProvider) *MarginsUseCase {
	return &MarginsUseCase{sessions: sessions, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *MarginsUseCase) WithClock(now func() time.Time) *MarginsUseCase {
	uc.now = now
	return uc
}

type marginAcc struct {
	count       int
	units       decimal.Decimal
	revenue     decimal.Decimal
	cogs        decimal.Decimal
	productName string
}

func newAcc() *marginAcc {
	return &marginAcc{units: decimal.Zero, revenue: decimal.Zero, cogs: decimal.Zero}
}

// GetMarginsReport genera el reporte de márgenes para un período.
func (uc *MarginsUseCase) GetMarginsReport(ctx context.Context, ownerID string, req dto.MarginsReportRequest) (*dto.MarginsReportDTO, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	start, end, err := parsePeriod(uc.now(), req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var (
		sales    []entity.Sale
		products []entity.Product
	)
	s.Read(func(l *ledger.Ledger) {
		sales = l.Sales()
		products = l.Products()
	})
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	byMethod := map[entity.PaymentMethod]*marginAcc{}
	byProduct := map[string]*marginAcc{}
	for _, sale := range sales {
		if sale.Status.IsDeleted() || !inRange(sale.Date, start, end) {
			continue
		}
		m, ok := byMethod[sale.PaymentMethod]
		if !ok {
			m = newAcc()
			byMethod[sale.PaymentMethod] = m
		}
		m.count++
		m.revenue = m.revenue.Add(sale.Total)
		for _, it := range sale.Items {
			m.units = m.units.Add(it.Quantity)
			m.cogs = m.cogs.Add(it.Quantity.Mul(it.Cost))

			p, ok := byProduct[it.ProductID]
			if !ok {
				p = newAcc()
				p.productName = names[it.ProductID]
				byProduct[it.ProductID] = p
			}
			p.units = p.units.Add(it.Quantity)
			p.revenue = p.revenue.Add(it.Quantity.Mul(it.Price))
			p.cogs = p.cogs.Add(it.Quantity.Mul(it.Cost))
		}
	}

	ranking := buildProductRanking(byProduct, topN)
	pareto := make([]dto.ProductRankingDTO, 0, len(ranking))
	for _, r := range ranking {
		if r.IsTopPareto {
			pareto = append(pareto, r)
		}
	}
	return &dto.MarginsReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
		Profitability:  buildPaymentProfitability(byMethod),
		ProductRanking: ranking,
		ParetoProducts: pareto,
	}, nil
}

func pct(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}

// buildPaymentProfitability totales globales y participación por forma de pago.
func buildPaymentProfitability(byMethod map[entity.PaymentMethod]*marginAcc) dto.PaymentProfitabilityDTO {
	totalRevenue, totalCOGS := decimal.Zero, decimal.Zero
	for _, m := range byMethod {
		totalRevenue = totalRevenue.Add(m.revenue)
		totalCOGS = totalCOGS.Add(m.cogs)
	}
	totalMargin := totalRevenue.Sub(totalCOGS)

	methods := make([]dto.MarginByPaymentDTO, 0, len(byMethod))
	for method, m := range byMethod {
		margin := m.revenue.Sub(m.cogs)
		methods = append(methods, dto.MarginByPaymentDTO{
			PaymentMethod: string(method),
			SaleCount:     m.count,
			UnitsSold:     m.units,
			GrossRevenue:  m.revenue.Round(2),
			TotalCOGS:     m.cogs.Round(2),
			TotalMargin:   margin.Round(2),
			MarginPct:     pct(margin, m.revenue),
			RevenuePct:    pct(m.revenue, totalRevenue),
		})
	}
	sort.Slice(methods, func(i, j int) bool {
		if c := methods[i].GrossRevenue.Cmp(methods[j].GrossRevenue); c != 0 {
			return c > 0
		}
		return methods[i].PaymentMethod < methods[j].PaymentMethod
	})
	return dto.PaymentProfitabilityDTO{
		TotalRevenue:     totalRevenue.Round(2),
		TotalCOGS:        totalCOGS.Round(2),
		TotalMargin:      totalMargin.Round(2),
		OverallMarginPct: pct(totalMargin, totalRevenue),
		Methods:          methods,
	}
}

// buildProductRanking ordena por margen bruto descendente y marca los productos que caen
// dentro del primer 80% de ingresos acumulados. El que cruza el umbral también cuenta.
func buildProductRanking(byProduct map[string]*marginAcc, topN int) []dto.ProductRankingDTO {
	type row struct {
		id string
		*marginAcc
	}
	rows := make([]row, 0, len(byProduct))
	totalRevenue := decimal.Zero
	for id, a := range byProduct {
		rows = append(rows, row{id, a})
		totalRevenue = totalRevenue.Add(a.revenue)
	}
	sort.Slice(rows, func(i, j int) bool {
		pi, pj := rows[i].revenue.Sub(rows[i].cogs), rows[j].revenue.Sub(rows[j].cogs)
		if c := pi.Cmp(pj); c != 0 {
			return c > 0
		}
		return rows[i].id < rows[j].id
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}

	ranking := make([]dto.ProductRankingDTO, 0, len(rows))
	cumulative := decimal.Zero
	for i, r := range rows {
		profit := r.revenue.Sub(r.cogs)
		revenuePct := pct(r.revenue, totalRevenue)
		before := cumulative
		cumulative = cumulative.Add(revenuePct)
		ranking = append(ranking, dto.ProductRankingDTO{
			Rank:             i + 1,
			ProductID:        r.id,
			ProductName:      r.productName,
			UnitsSold:        r.units,
			GrossRevenue:     r.revenue.Round(2),
			TotalCOGS:        r.cogs.Round(2),
			GrossProfit:      profit.Round(2),
			MarginPct:        pct(profit, r.revenue),
			RevenuePct:       revenuePct,
			CumulativeRevPct: cumulative.Round(2),
			IsTopPareto:      before.LessThan(pareto80),
		})
	}
	return ranking
}

// parsePeriod convierte las fechas YYYY-MM-DD en un rango inclusivo; vacías usan el mes en curso.
func parsePeriod(now time.Time, startStr, endStr string) (start, end time.Time, err error) {
	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate: %v", domain.ErrInvalidInput, err)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate: %v", domain.ErrInvalidInput, err)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate posterior a endDate", domain.ErrInvalidInput)
	}
	return start, end, nil
}
