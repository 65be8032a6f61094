package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// RentLedger is the rent screen state: three independently fetched slices.
// Each slice carries its own error so one failed fetch never blanks the
// others — there is no cross-field consistency guarantee at a single instant.
type RentLedger struct {
	Filters backend.RentFilters

	Payments    []models.Payment
	PaymentsErr error

	Stats    *models.RentStats
	StatsErr error

	Months    []string
	MonthsErr error
}

type RentService struct {
	api *backend.Client
}

func NewRentService(api *backend.Client) *RentService {
	return &RentService{api: api}
}

// Load fetches payments, aggregate stats, and distinct months in parallel.
// Any filter change re-runs all three. Failures stay local to their slice.
func (s *RentService) Load(ctx context.Context, sess *session.Session, f backend.RentFilters) *RentLedger {
	ledger := &RentLedger{Filters: f}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ledger.Payments, ledger.PaymentsErr = s.api.ListRentPayments(gctx, sess, f)
		return nil
	})
	g.Go(func() error {
		ledger.Stats, ledger.StatsErr = s.api.GetRentStats(gctx, sess, f)
		return nil
	})
	g.Go(func() error {
		ledger.Months, ledger.MonthsErr = s.api.ListRentMonths(gctx, sess)
		return nil
	})
	_ = g.Wait()

	return ledger
}

func (s *RentService) UpdateStatus(ctx context.Context, sess *session.Session, paymentID int64, status models.PaymentStatus) error {
	return s.api.UpdateRentPaymentStatus(ctx, sess, paymentID, status)
}
