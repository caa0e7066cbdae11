package dto

import "github.com/shopspring/decimal"

// MarginsReportRequest parámetros para GET /api/analytics/margins.
type MarginsReportRequest struct {
	StartDate string `query:"startDate"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"endDate"`   // YYYY-MM-DD; por defecto hoy
	TopN      int    `query:"topN"`      // máx productos a devolver (default 20, max 200)
}

// MarginByPaymentDTO margen por forma de pago (CASH | CARD | DEBT).
type MarginByPaymentDTO struct {
	PaymentMethod string          `json:"paymentMethod"`
	SaleCount     int             `json:"saleCount"`
	UnitsSold     decimal.Decimal `json:"unitsSold"`
	GrossRevenue  decimal.Decimal `json:"grossRevenue"`
	TotalCOGS     decimal.Decimal `json:"totalCogs"` // Σ cantidad × costo congelado
	TotalMargin   decimal.Decimal `json:"totalMargin"`
	MarginPct     decimal.Decimal `json:"marginPct"`
	RevenuePct    decimal.Decimal `json:"revenuePct"` // participación % en ingresos totales
}

// PaymentProfitabilityDTO resumen de rentabilidad con detalle por forma de pago.
type PaymentProfitabilityDTO struct {
	TotalRevenue     decimal.Decimal      `json:"totalRevenue"`
	TotalCOGS        decimal.Decimal      `json:"totalCogs"`
	TotalMargin      decimal.Decimal      `json:"totalMargin"`
	OverallMarginPct decimal.Decimal      `json:"overallMarginPct"`
	Methods          []MarginByPaymentDTO `json:"methods"`
}

// ProductRankingDTO margen y rentabilidad por producto.
type ProductRankingDTO struct {
	Rank             int             `json:"rank"` // 1 = más rentable
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	UnitsSold        decimal.Decimal `json:"unitsSold"`
	GrossRevenue     decimal.Decimal `json:"grossRevenue"`
	TotalCOGS        decimal.Decimal `json:"totalCogs"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	MarginPct        decimal.Decimal `json:"marginPct"`
	RevenuePct       decimal.Decimal `json:"revenuePct"`
	CumulativeRevPct decimal.Decimal `json:"cumulativeRevenuePct"`
	IsTopPareto      bool            `json:"isTopPareto"` // dentro del primer 80% de ingresos acumulados
}

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// MarginsReportDTO respuesta de GET /api/analytics/margins.
type MarginsReportDTO struct {
	Period         PeriodDTO               `json:"period"`
	Profitability  PaymentProfitabilityDTO `json:"profitability"`
	ProductRanking []ProductRankingDTO     `json:"productRanking"`
	ParetoProducts []ProductRankingDTO     `json:"paretoProducts"`
}
