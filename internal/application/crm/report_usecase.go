package crm

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF del pipeline de ventas del llamador:
// las mismas distribuciones de Stats, renderizadas para imprimir.
type ReportUseCase struct {
	userRepo repository.UserRepository
	leadRepo repository.LeadRepository
	pdfGen   LeadReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(userRepo repository.UserRepository, leadRepo repository.LeadRepository, pdfGen LeadReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{userRepo: userRepo, leadRepo: leadRepo, pdfGen: pdfGen}
}

// LeadPipelinePDF devuelve los bytes del PDF del pipeline del dueño.
func (uc *ReportUseCase) LeadPipelinePDF(ctx context.Context, ownerID string) ([]byte, error) {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	rows, err := uc.leadRepo.StatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateLeadReportPDF(ctx, owner, rows, time.Now())
}
