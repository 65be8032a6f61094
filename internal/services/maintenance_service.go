package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// maxParallelSaves bounds the parallel PUTs Save All issues.
const maxParallelSaves = 8

// MaintenanceEdit is one edited row from the triage table.
type MaintenanceEdit struct {
	RequestID int64
	Status    string
	Priority  string
	Cost      float64
}

// RowError pairs a failed row with its error so the screen can flag it while
// the rest of the table stays usable.
type RowError struct {
	RequestID int64
	Err       error
}

type MaintenanceService struct {
	api *backend.Client
}

func NewMaintenanceService(api *backend.Client) *MaintenanceService {
	return &MaintenanceService{api: api}
}

func (s *MaintenanceService) List(ctx context.Context, sess *session.Session) ([]models.MaintenanceRequest, error) {
	return s.api.ListMaintenanceRequests(ctx, sess)
}

// DiffEdits returns only the rows whose status, priority, or cost differ from
// the snapshot taken at the last successful load. Rows with no changes, and
// rows that no longer exist in the snapshot, produce nothing.
func DiffEdits(snapshot []models.MaintenanceRequest, edits []MaintenanceEdit) []MaintenanceEdit {
	byID := make(map[int64]models.MaintenanceRequest, len(snapshot))
	for _, req := range snapshot {
		byID[req.ID] = req
	}

	var changed []MaintenanceEdit
	for _, e := range edits {
		orig, ok := byID[e.RequestID]
		if !ok {
			continue
		}
		if e.Status != orig.Status || e.Priority != orig.Priority || e.Cost != orig.Cost {
			changed = append(changed, e)
		}
	}
	return changed
}

// SaveAll persists the changed rows, one update request per row, issued in
// parallel. It returns the per-row failures; nil means every row saved.
func (s *MaintenanceService) SaveAll(ctx context.Context, sess *session.Session, changed []MaintenanceEdit) []RowError {
	if len(changed) == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		failures []RowError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSaves)
	for _, edit := range changed {
		edit := edit
		g.Go(func() error {
			err := s.api.UpdateMaintenanceRequest(gctx, sess, edit.RequestID, backend.MaintenanceUpdate{
				Status:   edit.Status,
				Priority: edit.Priority,
				Cost:     edit.Cost,
			})
			if err != nil {
				mu.Lock()
				failures = append(failures, RowError{RequestID: edit.RequestID, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].RequestID < failures[j].RequestID })
	return failures
}
