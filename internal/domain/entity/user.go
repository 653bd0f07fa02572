package entity

import "time"

// User representa un usuario autenticable del CRM. Es el dueño de sus clientes:
// todo el control de acceso se deriva de Customer.OwnerID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
