// seed crea el esquema (si no existe) y carga datos de demostración: un
// usuario demo@crm.local / demo1234 con clientes y leads de ejemplo.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	id          UUID PRIMARY KEY,
	owner_id    UUID NOT NULL REFERENCES users(id),
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	phone       TEXT NOT NULL DEFAULT '',
	company     TEXT NOT NULL DEFAULT '',
	search_name TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_customers_owner ON customers(owner_id);
CREATE INDEX IF NOT EXISTS idx_customers_search ON customers(owner_id, search_name);

CREATE TABLE IF NOT EXISTS leads (
	id          UUID PRIMARY KEY,
	customer_id UUID NOT NULL REFERENCES customers(id),
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'New',
	value       NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_customer ON leads(customer_id);
CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema verificado")

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)

	existing, err := userRepo.FindByEmail(ctx, "demo@crm.local")
	if err != nil {
		fail("buscar usuario demo: %v", err)
	}
	if existing != nil {
		fmt.Println("el usuario demo ya existe, nada que sembrar")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	now := time.Now()
	owner := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Usuario Demo",
		Email:        "demo@crm.local",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, owner); err != nil {
		fail("crear usuario demo: %v", err)
	}

	customers := []*entity.Customer{
		{Name: "José Pérez", Email: "jose.perez@acme.co", Phone: "+57 300 111 2233", Company: "Acme S.A."},
		{Name: "María Gómez", Email: "maria@norte.io", Company: "Distribuidora Norte"},
		{Name: "Bob Smith", Email: "bob@x.com", Phone: "+1 555 0100"},
	}
	leadSeeds := map[int][]*entity.Lead{
		0: {
			{Title: "Renovación licencias", Status: entity.LeadStatusNew, Value: decimal.NewFromInt(100)},
			{Title: "Ampliación de soporte", Status: entity.LeadStatusNew, Value: decimal.NewFromInt(50)},
		},
		1: {
			{Title: "Migración a la nube", Status: entity.LeadStatusContacted, Value: decimal.NewFromInt(250)},
		},
		2: {
			{Title: "Piloto cancelado", Status: entity.LeadStatusLost, Value: decimal.NewFromInt(20)},
		},
	}

	for i, c := range customers {
		c.ID = uuid.New().String()
		c.OwnerID = owner.ID
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := customerRepo.Create(ctx, c); err != nil {
			fail("crear cliente %s: %v", c.Name, err)
		}
		for _, l := range leadSeeds[i] {
			l.ID = uuid.New().String()
			l.CustomerID = c.ID
			l.CreatedAt = now
			l.UpdatedAt = now
			if err := leadRepo.Create(ctx, l); err != nil {
				fail("crear lead %s: %v", l.Title, err)
			}
		}
	}

	fmt.Println("datos demo sembrados: demo@crm.local / demo1234")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
