package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
// Mantiene la columna search_name (nombre normalizado vía NormalizeSearch) para
// que la búsqueda por nombre sea case- y acento-insensible.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, owner_id, name, email, phone, company, search_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.OwnerID, customer.Name, customer.Email, customer.Phone, customer.Company,
		NormalizeSearch(customer.Name), customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un cliente por ID acotado al dueño. Un cliente ajeno
// devuelve (nil, nil) igual que uno inexistente.
func (r *CustomerRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Customer, error) {
	query := `
		SELECT id, owner_id, name, email, phone, company, created_at, updated_at
		FROM customers WHERE id = $1 AND owner_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByOwner lista clientes del dueño con paginación. El orden es el de
// inserción (created_at, id como desempate) para que las páginas concatenen
// sin duplicados ni omisiones.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerID, search string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, owner_id, name, email, phone, company, created_at, updated_at
		FROM customers WHERE owner_id = $1`
	args := []any{ownerID}
	if search != "" {
		query += fmt.Sprintf(` AND (search_name LIKE $%d OR lower(email) LIKE $%d)`, len(args)+1, len(args)+1)
		args = append(args, searchPattern(search))
	}
	query += fmt.Sprintf(` ORDER BY created_at, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los clientes del dueño que satisfacen el filtro de
// búsqueda, antes de aplicar paginación.
func (r *CustomerRepo) CountByOwner(ctx context.Context, ownerID, search string) (int, error) {
	query := `SELECT COUNT(*) FROM customers WHERE owner_id = $1`
	args := []any{ownerID}
	if search != "" {
		query += fmt.Sprintf(` AND (search_name LIKE $%d OR lower(email) LIKE $%d)`, len(args)+1, len(args)+1)
		args = append(args, searchPattern(search))
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente (owner_id nunca cambia) y refresca search_name.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, company = $5, search_name = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company,
		NormalizeSearch(customer.Name), customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// searchPattern normaliza y escapa el término del usuario para LIKE substring.
func searchPattern(search string) string {
	return "%" + escapeLike(NormalizeSearch(search)) + "%"
}
