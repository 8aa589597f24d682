package interfaces

import (
	"context"
	"time"

	"uniformes_store/internal/domain/entities"
)

// InvoiceLine is one invoice line item. UnitPriceCents is derived from the order
// line total when not separately stored.
type InvoiceLine struct {
	ProductName    string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// InvoiceData is everything the renderer needs to produce the nota fiscal document.
type InvoiceData struct {
	Number     string
	IssuedAt   time.Time
	Customer   entities.Customer
	Lines      []InvoiceLine
	TotalCents int64
}

// RenderedInvoice points at the durable document produced by the renderer.
type RenderedInvoice struct {
	DocumentKey string
	DocumentURL string
}

// IInvoiceRenderer produces a durable invoice document and a retrievable reference.
// Consumed as a black box; the S3-backed implementation lives in infrastructure.

type IInvoiceRenderer interface {
	Render(ctx context.Context, data InvoiceData) (RenderedInvoice, error)
}
