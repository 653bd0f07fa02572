package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Toda lectura va acotada al ownerID del llamador: un cliente ajeno es
// indistinguible de uno inexistente (las consultas devuelven nil, nil).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Customer, error)
	// ListByOwner pagina los clientes del dueño; search filtra por substring
	// (case/acento-insensible) sobre nombre O email. search vacío lista todos.
	ListByOwner(ctx context.Context, ownerID, search string, limit, offset int) ([]*entity.Customer, error)
	CountByOwner(ctx context.Context, ownerID, search string) (int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
