package entity

import "time"

// Customer representa un cliente del CRM. OwnerID se asigna al crear con la
// identidad del llamador y es inmutable: nunca se acepta del cuerpo de la petición.
type Customer struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
