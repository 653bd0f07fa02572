package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadFilter criterios de listado de leads. Exactamente uno de OwnerID o
// CustomerID debe estar presente: por cliente (ya verificado como propio) o por
// todos los clientes del dueño (join con customers). Status vacío = todos.
type LeadFilter struct {
	OwnerID    string
	CustomerID string
	Status     entity.LeadStatus
	Limit      int
	Offset     int
}

// LeadStatusStat fila agregada del pipeline: conteo y suma de valor por estado.
// Solo aparecen estados con al menos un lead; nunca se emiten ceros.
type LeadStatusStat struct {
	Status     entity.LeadStatus
	Count      int
	TotalValue decimal.Decimal
}

// LeadRepository define el puerto de persistencia para Lead. Un Lead no conoce
// a su dueño: el acotamiento por propiedad se hace vía join con customers.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	// List ordena por created_at descendente (más reciente primero), con id como
	// desempate para que la paginación sea estable.
	List(ctx context.Context, f LeadFilter) ([]*entity.Lead, error)
	Count(ctx context.Context, f LeadFilter) (int, error)
	// AllByCustomer devuelve todos los leads de un cliente (detalle, sin paginar).
	AllByCustomer(ctx context.Context, customerID string) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	DeleteByCustomer(ctx context.Context, customerID string) error
	// StatsByOwner agrupa por estado los leads de los clientes del dueño en una
	// sola pasada (count + sum de value).
	StatsByOwner(ctx context.Context, ownerID string) ([]LeadStatusStat, error)
}
