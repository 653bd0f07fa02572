package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/crm"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// ReportHandler sirve el reporte PDF del pipeline (protegido).
type ReportHandler struct {
	uc *crm.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *crm.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LeadPipelinePDF godoc
// @Summary      Descargar reporte PDF del pipeline de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/leads.pdf [get]
func (h *ReportHandler) LeadPipelinePDF(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.uc.LeadPipelinePDF(c.Context(), ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="pipeline-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdfBytes)
}
