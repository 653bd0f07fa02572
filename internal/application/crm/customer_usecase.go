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

// DefaultCustomerPageSize tamaño de página del listado de clientes cuando el
// llamador no envía limit.
const DefaultCustomerPageSize = 5

// CustomerUseCase casos de uso de clientes. Toda operación recibe el ownerID
// del llamador como parámetro explícito; nunca se lee de estado ambiente.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	leadRepo repository.LeadRepository
	tx       TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, leadRepo repository.LeadRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, leadRepo: leadRepo, tx: tx}
}

// Create crea un cliente. El OwnerID se fuerza a la identidad del llamador,
// ignorando cualquier dueño que venga en la entrada.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List pagina los clientes del dueño. search filtra por substring sobre nombre
// O email; el sobre lleva el total de coincidencias ANTES de paginar.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID, search string, page dto.PageQuery) (*dto.CustomerListResponse, error) {
	page.Normalize(DefaultCustomerPageSize)

	total, err := uc.repo.CountByOwner(ctx, ownerID, search)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByOwner(ctx, ownerID, search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers: out,
		Pagination: dto.CustomerPagination{
			CurrentPage:    page.Page,
			TotalPages:     dto.TotalPages(total, page.Limit),
			TotalCustomers: total,
		},
	}, nil
}

// GetByID devuelve un cliente del dueño junto con todos sus leads.
// Un cliente ajeno responde ErrNotFound igual que uno inexistente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	leads, err := uc.leadRepo.AllByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	leadOut := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		leadOut = append(leadOut, toLeadResponse(l))
	}
	return &dto.CustomerDetailResponse{
		Customer: toCustomerResponse(customer),
		Leads:    leadOut,
	}, nil
}

// Update actualiza los campos presentes de un cliente del dueño. El OwnerID es
// inmutable y no forma parte de la entrada.
func (uc *CustomerUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete borra un cliente del dueño y sus leads en cascada, dentro de una misma
// transacción: o desaparecen el cliente y todos sus leads, o ninguno.
func (uc *CustomerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, leadRepo repository.LeadRepository) error {
		customer, err := customerRepo.GetByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if err := leadRepo.DeleteByCustomer(ctx, customer.ID); err != nil {
			return err
		}
		return customerRepo.Delete(ctx, customer.ID)
	})
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
