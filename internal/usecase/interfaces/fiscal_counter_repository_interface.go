package interfaces

import "context"

// IFiscalCounterRepository abstracts the per-year nota fiscal counter.
//
// IncrementAndGet must be a single atomic increment-and-fetch at the storage layer
// (DynamoDB ADD with ReturnValues=UPDATED_NEW): never a read followed by a write.
// The first call for a year creates the row and returns 1.

type IFiscalCounterRepository interface {
	IncrementAndGet(ctx context.Context, year int) (int64, error)
}
