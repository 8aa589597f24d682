package interfaces

import (
	"context"

	"uniformes_store/internal/domain/entities"
)

// IOrderRepository is the thin slice of order persistence consumed by payments:
// reads for checkout validation / invoice lines, plus the status fan-out on approval.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
}
