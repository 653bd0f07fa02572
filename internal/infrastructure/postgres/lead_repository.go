package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx). El
// acotamiento por dueño se resuelve con un join a customers: el lead no
// almacena owner alguno.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `l.id, l.customer_id, l.title, l.description, l.status, l.value, l.created_at, l.updated_at`

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, customer_id, title, description, status, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.CustomerID, lead.Title, lead.Description, string(lead.Status), lead.Value,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID (sin acotar: la autorización transitiva la
// hace el use case resolviendo el Customer padre).
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.id = $1`
	lead, err := scanLead(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// List lista leads según el filtro, más recientes primero (id como desempate).
func (r *LeadRepo) List(ctx context.Context, f repository.LeadFilter) ([]*entity.Lead, error) {
	where, args := leadFilterClause(f)
	query := `SELECT ` + leadColumns + ` FROM leads l` + where +
		fmt.Sprintf(` ORDER BY l.created_at DESC, l.id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, lead)
	}
	return list, rows.Err()
}

// Count cuenta los leads que satisfacen el filtro, antes de paginar.
func (r *LeadRepo) Count(ctx context.Context, f repository.LeadFilter) (int, error) {
	where, args := leadFilterClause(f)
	query := `SELECT COUNT(*) FROM leads l` + where
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return total, nil
}

// AllByCustomer devuelve todos los leads de un cliente (detalle, sin paginar).
func (r *LeadRepo) AllByCustomer(ctx context.Context, customerID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.customer_id = $1 ORDER BY l.created_at DESC, l.id DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("leads by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, lead)
	}
	return list, rows.Err()
}

// Update actualiza un lead (customer_id nunca cambia).
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET title = $2, description = $3, status = $4, value = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.Title, lead.Description, string(lead.Status), lead.Value, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead por ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todos los leads de un cliente (borrado en cascada,
// se invoca dentro de la transacción que borra el cliente).
func (r *LeadRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete leads by customer: %w", err)
	}
	return nil
}

// StatsByOwner agrupa por estado los leads de los clientes del dueño: conteo y
// suma de valor en una sola pasada. Los estados sin leads simplemente no
// producen fila.
func (r *LeadRepo) StatsByOwner(ctx context.Context, ownerID string) ([]repository.LeadStatusStat, error) {
	const query = `
	SELECT
	    l.status,
	    COUNT(*)                    AS lead_count,
	    COALESCE(SUM(l.value), 0)   AS total_value
	FROM leads l
	JOIN customers c ON c.id = l.customer_id
	WHERE c.owner_id = $1
	GROUP BY l.status
	ORDER BY l.status`

	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("lead stats: %w", err)
	}
	defer rows.Close()
	var results []repository.LeadStatusStat
	for rows.Next() {
		var row repository.LeadStatusStat
		var status string
		if err := rows.Scan(&status, &row.Count, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("lead stats scan: %w", err)
		}
		row.Status = entity.LeadStatus(status)
		results = append(results, row)
	}
	return results, rows.Err()
}

// leadFilterClause arma el FROM/WHERE del filtro: por cliente directo o por
// dueño (join a customers). Status opcional.
func leadFilterClause(f repository.LeadFilter) (string, []any) {
	var clause string
	var args []any
	if f.CustomerID != "" {
		clause = ` WHERE l.customer_id = $1`
		args = append(args, f.CustomerID)
	} else {
		clause = ` JOIN customers c ON c.id = l.customer_id WHERE c.owner_id = $1`
		args = append(args, f.OwnerID)
	}
	if f.Status != "" {
		clause += fmt.Sprintf(` AND l.status = $%d`, len(args)+1)
		args = append(args, string(f.Status))
	}
	return clause, args
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	var status string
	if err := row.Scan(&l.ID, &l.CustomerID, &l.Title, &l.Description, &status, &l.Value, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.Status = entity.LeadStatus(status)
	return &l, nil
}
