package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de merma.
const (
	WastageBurnt   = "burnt"
	WastageSpoiled = "spoiled"
	WastageExpired = "expired"
	WastageDropped = "dropped"
)

// IsValidWastageReason indica si r es un motivo de merma admitido.
func IsValidWastageReason(r string) bool {
	switch r {
	case WastageBurnt, WastageSpoiled, WastageExpired, WastageDropped:
		return true
	}
	return false
}

// WastageLog registra una pérdida de ingrediente (quemado, dañado, vencido o caído).
type WastageLog struct {
	ID           string
	IngredientID string
	Quantity     decimal.Decimal
	Reason       string
	Date         time.Time
	LoggedBy     string
	CreatedAt    time.Time
}
