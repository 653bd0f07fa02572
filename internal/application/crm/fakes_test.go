package crm_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso.
// Replican el contrato de los repositorios Postgres: lecturas acotadas devuelven
// (nil, nil) cuando no hay fila, listado de leads más reciente primero.
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) matches(c *entity.Customer, ownerID, search string) bool {
	if c.OwnerID != ownerID {
		return false
	}
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), s) ||
		strings.Contains(strings.ToLower(c.Email), s)
}

func (r *memCustomerRepo) ListByOwner(_ context.Context, ownerID, search string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.byID {
		if r.matches(c, ownerID, search) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if offset >= len(out) {
		return []*entity.Customer{}, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memCustomerRepo) CountByOwner(_ context.Context, ownerID, search string) (int, error) {
	n := 0
	for _, c := range r.byID {
		if r.matches(c, ownerID, search) {
			n++
		}
	}
	return n, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

type memLeadRepo struct {
	byID      map[string]*entity.Lead
	customers *memCustomerRepo
}

func newMemLeadRepo(customers *memCustomerRepo) *memLeadRepo {
	return &memLeadRepo{byID: map[string]*entity.Lead{}, customers: customers}
}

func (r *memLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeadRepo) matches(l *entity.Lead, f repository.LeadFilter) bool {
	if f.CustomerID != "" {
		if l.CustomerID != f.CustomerID {
			return false
		}
	} else {
		// Equivalente al join con customers acotado por owner_id.
		c, ok := r.customers.byID[l.CustomerID]
		if !ok || c.OwnerID != f.OwnerID {
			return false
		}
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	return true
}

func (r *memLeadRepo) List(_ context.Context, f repository.LeadFilter) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.byID {
		if r.matches(l, f) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if f.Offset >= len(out) {
		return []*entity.Lead{}, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *memLeadRepo) Count(_ context.Context, f repository.LeadFilter) (int, error) {
	n := 0
	for _, l := range r.byID {
		if r.matches(l, f) {
			n++
		}
	}
	return n, nil
}

func (r *memLeadRepo) AllByCustomer(_ context.Context, customerID string) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.byID {
		if l.CustomerID == customerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	if _, ok := r.byID[l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memLeadRepo) DeleteByCustomer(_ context.Context, customerID string) error {
	for id, l := range r.byID {
		if l.CustomerID == customerID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memLeadRepo) StatsByOwner(_ context.Context, ownerID string) ([]repository.LeadStatusStat, error) {
	agg := map[entity.LeadStatus]*repository.LeadStatusStat{}
	for _, l := range r.byID {
		c, ok := r.customers.byID[l.CustomerID]
		if !ok || c.OwnerID != ownerID {
			continue
		}
		row, ok := agg[l.Status]
		if !ok {
			row = &repository.LeadStatusStat{Status: l.Status}
			agg[l.Status] = row
		}
		row.Count++
		row.TotalValue = row.TotalValue.Add(l.Value)
	}
	out := make([]repository.LeadStatusStat, 0, len(agg))
	for _, row := range agg {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

var _ repository.LeadRepository = (*memLeadRepo)(nil)

// memTxRunner ejecuta el callback directo sobre los repos en memoria: no hay
// transacción real, solo se respeta el contrato del puerto.
type memTxRunner struct {
	customers *memCustomerRepo
	leads     *memLeadRepo
}

func (tx *memTxRunner) Run(_ context.Context, fn func(repository.CustomerRepository, repository.LeadRepository) error) error {
	return fn(tx.customers, tx.leads)
}
