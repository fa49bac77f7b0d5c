package aiusage

import "context"

// Service orchestrates per-client generation quota logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseGeneration deducts one itinerary generation from the client's daily allowance.
// If the client's counter does not exist yet it is initialised and the generation
// is immediately consumed. Returns ErrQuotaExhausted when today's allowance is gone.
func (s *Service) UseGeneration(ctx context.Context, clientID string) error {
	err := s.store.UseGeneration(ctx, clientID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Counter may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureClient(ctx, clientID); initErr != nil {
		return initErr
	}
	return s.store.UseGeneration(ctx, clientID)
}
