package interfaces

import (
	"context"

	"uniformes_store/internal/domain/entities"
)

// ICustomerRepository resolves customer records for gateway payer data,
// invoice headers and notifications.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
