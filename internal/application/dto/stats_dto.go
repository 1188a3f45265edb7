package dto

import "github.com/shopspring/decimal"

// BusinessStatsResponse agregados operativos del negocio, recalculados en
// cada llamada contra el estado actual. Todos los campos valen cero para un
// negocio sin actividad.
type BusinessStatsResponse struct {
	TodaySales     decimal.Decimal `json:"today_sales"`
	TotalProducts  int             `json:"total_products"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalCustomers int             `json:"total_customers"`
}
