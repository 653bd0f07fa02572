package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. No acepta owner_id: el
// dueño se fuerza siempre a la identidad del token.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Company string `json:"company" validate:"omitempty,max=200"`
}

// UpdateCustomerRequest entrada para actualizar un cliente. Campos nil = sin cambio.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Company *string `json:"company" validate:"omitempty,max=200"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerPagination sobre de paginación del listado de clientes.
// total_customers cuenta los registros que satisfacen el filtro ANTES de paginar.
type CustomerPagination struct {
	CurrentPage    int `json:"current_page"`
	TotalPages     int `json:"total_pages"`
	TotalCustomers int `json:"total_customers"`
}

// CustomerListResponse página de clientes más su sobre.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination CustomerPagination `json:"pagination"`
}

// CustomerDetailResponse cliente más todos sus leads (detalle, sin paginar).
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Leads    []LeadResponse   `json:"leads"`
}
