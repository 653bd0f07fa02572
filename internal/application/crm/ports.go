package crm

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		leadRepo repository.LeadRepository,
	) error) error
}

// LeadReportPDFGenerator genera la representación PDF del reporte de pipeline.
// Lo implementa pdf.MarotoReportGenerator.
type LeadReportPDFGenerator interface {
	GenerateLeadReportPDF(
		ctx context.Context,
		owner *entity.User,
		rows []repository.LeadStatusStat,
		generatedAt time.Time,
	) ([]byte, error)
}
