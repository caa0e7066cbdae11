package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contiene los KPIs del día y del mes en curso, el Top-5 de productos del mes y los saldos
// abiertos de la tienda.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"todaySales"`  // ingresos brutos de hoy
	TodayMargin decimal.Decimal `json:"todayMargin"` // margen bruto de hoy (ventas - costo congelado)

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales  decimal.Decimal `json:"monthlySales"`
	MonthlyMargin decimal.Decimal `json:"monthlyMargin"`

	TopProducts []TopProductDTO `json:"topProducts"`

	// Saldos
	CashBalance decimal.Decimal `json:"cashBalance"`
	Receivables decimal.Decimal `json:"receivables"` // Σ deuda de clientes
	Payables    decimal.Decimal `json:"payables"`    // Σ deuda con proveedores
	StockValue  decimal.Decimal `json:"stockValue"`  // Σ cantidad × costo
	LowStock    int             `json:"lowStock"`

	DateLabel string `json:"dateLabel"` // ej: "Febrero 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	QuantitySold     decimal.Decimal `json:"quantitySold"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	MarginPercentage decimal.Decimal `json:"marginPercentage"` // (revenue - cogs) / revenue * 100
}
