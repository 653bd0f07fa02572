package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// DefaultLeadPageSize tamaño de página del listado de leads cuando el llamador
// no envía limit.
const DefaultLeadPageSize = 10

// StatusFilterAll valor centinela del filtro de estado: equivale a no filtrar.
const StatusFilterAll = "all"

// LeadUseCase casos de uso de leads. La propiedad es transitiva: cada operación
// resuelve el Customer padre en el momento de la mutación (nunca un valor
// cacheado) y verifica que pertenezca al llamador.
type LeadUseCase struct {
	repo         repository.LeadRepository
	customerRepo repository.CustomerRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, customerRepo repository.CustomerRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea un lead para un cliente del llamador. Si el cliente no existe o
// pertenece a otro dueño responde ErrForbidden: ambos casos son indistinguibles
// para no filtrar existencia. Status vacío toma el default "New".
func (uc *LeadUseCase) Create(ctx context.Context, ownerID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.CustomerID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	status := entity.LeadStatusNew
	if in.Status != "" {
		parsed, ok := entity.ParseLeadStatus(in.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		status = parsed
	}
	parent, err := uc.customerRepo.GetByIDAndOwner(ctx, in.CustomerID, ownerID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:          uuid.New().String(),
		CustomerID:  parent.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Value:       in.Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	resp := toLeadResponse(lead)
	return &resp, nil
}

// List pagina leads del llamador, más recientes primero. Con customerID acota a
// ese cliente (ErrForbidden si no es suyo); sin él, a todos los leads de sus
// clientes vía join. status filtra por igualdad exacta; "all" o vacío no filtra.
func (uc *LeadUseCase) List(ctx context.Context, ownerID, customerID, status string, page dto.PageQuery) (*dto.LeadListResponse, error) {
	page.Normalize(DefaultLeadPageSize)

	filter := repository.LeadFilter{
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
	if status != "" && status != StatusFilterAll {
		parsed, ok := entity.ParseLeadStatus(status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		filter.Status = parsed
	}
	if customerID != "" {
		parent, err := uc.customerRepo.GetByIDAndOwner(ctx, customerID, ownerID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrForbidden
		}
		filter.CustomerID = parent.ID
	} else {
		filter.OwnerID = ownerID
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Leads: out,
		Pagination: dto.LeadPagination{
			CurrentPage: page.Page,
			TotalPages:  dto.TotalPages(total, page.Limit),
			TotalLeads:  total,
		},
	}, nil
}

// Update actualiza los campos presentes de un lead. Re-resuelve el Customer
// padre en este momento y exige que sea del llamador; el lead conserva su padre.
func (uc *LeadUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.authorizeMutation(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		lead.Title = *in.Title
	}
	if in.Description != nil {
		lead.Description = *in.Description
	}
	if in.Status != nil {
		parsed, ok := entity.ParseLeadStatus(*in.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		lead.Status = parsed
	}
	if in.Value != nil {
		lead.Value = *in.Value
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	resp := toLeadResponse(lead)
	return &resp, nil
}

// Delete borra un lead previa re-verificación de propiedad del padre.
func (uc *LeadUseCase) Delete(ctx context.Context, ownerID, id string) error {
	lead, err := uc.authorizeMutation(ctx, ownerID, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, lead.ID)
}

// authorizeMutation carga el lead y verifica la propiedad transitiva:
// ErrNotFound si el lead no existe, ErrForbidden si el Customer padre no
// pertenece al llamador. El padre se consulta siempre contra la base, de modo
// que una futura reasignación de dueño surtiría efecto inmediato.
func (uc *LeadUseCase) authorizeMutation(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	parent, err := uc.customerRepo.GetByIDAndOwner(ctx, lead.CustomerID, ownerID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrForbidden
	}
	return lead, nil
}

// Stats devuelve las distribuciones del pipeline acotadas a los clientes del
// llamador: conteo y suma de valor por estado, calculados en una sola pasada.
// Estados sin leads no aparecen; sin datos, ambas listas van vacías.
func (uc *LeadUseCase) Stats(ctx context.Context, ownerID string) (*dto.LeadStatsResponse, error) {
	rows, err := uc.repo.StatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LeadStatsResponse{
		StatusDistribution: make([]dto.StatusCountDTO, 0, len(rows)),
		ValueDistribution:  make([]dto.StatusValueDTO, 0, len(rows)),
	}
	for _, r := range rows {
		resp.StatusDistribution = append(resp.StatusDistribution, dto.StatusCountDTO{
			Status: string(r.Status),
			Count:  r.Count,
		})
		resp.ValueDistribution = append(resp.ValueDistribution, dto.StatusValueDTO{
			Status:     string(r.Status),
			TotalValue: r.TotalValue,
		})
	}
	return resp, nil
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:          l.ID,
		CustomerID:  l.CustomerID,
		Title:       l.Title,
		Description: l.Description,
		Status:      string(l.Status),
		Value:       l.Value,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
