package billing

import (
	"context"

	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto de generación de la representación gráfica
// de una factura (implementado en infrastructure/pdf con Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}

// PDFUseCase arma el PDF descargable de una factura del portal.
type PDFUseCase struct {
	repo      repository.InvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// GenerateInvoicePDF busca la factura y devuelve los bytes del PDF junto
// con un nombre de archivo sugerido.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", err
	}
	filename := "factura-" + inv.InvoiceNumber + ".pdf"
	return pdf, filename, nil
}
