package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"uniformes_store/internal/usecase/interfaces"
)

const invoiceNumberPrefix = "NF"

var ErrFiscalCounterNotConfigured = errors.New("fiscal counter repository not configured")

// IInvoiceSequence hands out nota fiscal numbers, partitioned by calendar year.

type IInvoiceSequence interface {
	NextInvoiceNumber(ctx context.Context) (string, error)
}

// InvoiceSequence formats numbers on top of the storage-level increment-and-fetch.
// All uniqueness and gap-freedom guarantees come from the counter repository; this
// type adds only the year and the NF-<year>-<seq> formatting.

type InvoiceSequence struct {
	counters interfaces.IFiscalCounterRepository
	now      func() time.Time
}

var _ IInvoiceSequence = (*InvoiceSequence)(nil)

func NewInvoiceSequence(counters interfaces.IFiscalCounterRepository) *InvoiceSequence {
	return &InvoiceSequence{counters: counters, now: time.Now}
}

func (s *InvoiceSequence) NextInvoiceNumber(ctx context.Context) (string, error) {
	if s.counters == nil {
		return "", ErrFiscalCounterNotConfigured
	}

	year := s.now().UTC().Year()
	seq, err := s.counters.IncrementAndGet(ctx, year)
	if err != nil {
		log.Printf("[invoice][sequence] increment failed year=%d err=%v", year, err)
		return "", err
	}

	number := FormatInvoiceNumber(year, seq)
	log.Printf("[invoice][sequence] allocated number=%s", number)
	return number, nil
}

// FormatInvoiceNumber renders e.g. NF-2026-000001.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", invoiceNumberPrefix, year, seq)
}
