package export

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
)

// ReportLine fila de la tabla de inventario del reporte.
type ReportLine struct {
	Name       string
	Category   string
	Unit       string
	Stock      decimal.Decimal
	UnitCost   decimal.Decimal
	Value      decimal.Decimal
	ExpiryDate string
	Status     string
}

// InventoryReport datos del reporte de inventario: KPIs, distribución, ranking y detalle.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Overview    *dto.DashboardOverviewDTO
	Lines       []ReportLine
}

// ReportGenerator puerto de salida para renderizar el reporte (PDF).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report *InventoryReport) ([]byte, error)
}
