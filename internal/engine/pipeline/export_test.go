package pipeline

import "go.trai.ch/gembom/internal/core/domain"

// Statuses returns a copy of the item statuses of the last run.
// This is exported for testing purposes only.
func (s *Stage[In, Out]) Statuses() []domain.ItemStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ItemStatus(nil), s.itemStatus...)
}
