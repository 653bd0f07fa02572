package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus estado de una oportunidad dentro del pipeline de ventas.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusConverted LeadStatus = "Converted"
	LeadStatusLost      LeadStatus = "Lost"
)

// ParseLeadStatus valida un estado recibido como texto. El string vacío no es
// un estado válido: quien necesite el default debe usar LeadStatusNew explícitamente.
func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return LeadStatus(s), true
	}
	return "", false
}

// Lead representa una oportunidad de venta ligada a un Customer. No tiene dueño
// propio: su visibilidad se deriva siempre del OwnerID del Customer padre, y esa
// relación se resuelve en cada mutación, nunca desde un valor cacheado.
type Lead struct {
	ID          string
	CustomerID  string
	Title       string
	Description string
	Status      LeadStatus
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
