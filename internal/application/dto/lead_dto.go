package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead. El customer_id referenciado
// debe pertenecer al llamador; status vacío toma el default "New".
type CreateLeadRequest struct {
	CustomerID  string          `json:"customer_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Status      string          `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       decimal.Decimal `json:"value"`
}

// UpdateLeadRequest entrada para actualizar un lead. Campos nil = sin cambio.
// customer_id no es actualizable: el lead no cambia de cliente padre.
type UpdateLeadRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Status      *string          `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *decimal.Decimal `json:"value"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LeadPagination sobre de paginación del listado de leads.
type LeadPagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalLeads  int `json:"total_leads"`
}

// LeadListResponse página de leads más su sobre.
type LeadListResponse struct {
	Leads      []LeadResponse `json:"leads"`
	Pagination LeadPagination `json:"pagination"`
}

// StatusCountDTO conteo de leads por estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusValueDTO suma del valor monetario de los leads por estado.
type StatusValueDTO struct {
	Status     string          `json:"status"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// LeadStatsResponse distribuciones del pipeline acotadas al dueño. Un estado
// sin leads no aparece en ninguna de las dos listas (ausente, no cero); sin
// datos ambas van como listas vacías, nunca null.
type LeadStatsResponse struct {
	StatusDistribution []StatusCountDTO `json:"status_distribution"`
	ValueDistribution  []StatusValueDTO `json:"value_distribution"`
}
