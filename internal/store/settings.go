package store

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// SettingsState is a point-in-time copy of the reference data settings page.
type SettingsState struct {
	Categories  ReferenceState
	Statuses    ReferenceState
	NewCategory string
	NewStatus   string
	Error       string
	Kind        domainErrors.Kind
}

// Settings backs the page where staff maintain categories and statuses.
type Settings struct {
	categories *ReferenceStore
	statuses   *ReferenceStore

	mu          sync.Mutex
	newCategory string
	newStatus   string
	err         string
	kind        domainErrors.Kind
}

// NewSettings creates the settings view over the shared reference stores.
func NewSettings(categories, statuses *ReferenceStore) *Settings {
	return &Settings{categories: categories, statuses: statuses}
}

// Load refreshes both collections.
func (s *Settings) Load(ctx context.Context) bool {
	s.setError("", domainErrors.KindNone)
	failed := FetchReferences(ctx, s.categories, s.statuses)
	if !failed.OK {
		s.setError(failed.Error, failed.Kind)
		return false
	}
	return true
}

// SetNewCategory binds the category input.
func (s *Settings) SetNewCategory(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newCategory = label
}

// SetNewStatus binds the status input.
func (s *Settings) SetNewStatus(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newStatus = label
}

// AddCategory submits the category input.
func (s *Settings) AddCategory(ctx context.Context) bool {
	return s.add(ctx, s.categories, &s.newCategory)
}

// AddStatus submits the status input.
func (s *Settings) AddStatus(ctx context.Context) bool {
	return s.add(ctx, s.statuses, &s.newStatus)
}

// DeleteCategory removes a category.
func (s *Settings) DeleteCategory(ctx context.Context, id int64) bool {
	return s.remove(ctx, s.categories, id)
}

// DeleteStatus removes a status.
func (s *Settings) DeleteStatus(ctx context.Context, id int64) bool {
	return s.remove(ctx, s.statuses, id)
}

// Snapshot returns a copy of the current state.
func (s *Settings) Snapshot() SettingsState {
	categories := s.categories.Snapshot()
	statuses := s.statuses.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	return SettingsState{
		Categories:  categories,
		Statuses:    statuses,
		NewCategory: s.newCategory,
		NewStatus:   s.newStatus,
		Error:       s.err,
		Kind:        s.kind,
	}
}

func (s *Settings) add(ctx context.Context, target *ReferenceStore, input *string) bool {
	s.mu.Lock()
	label := strings.TrimSpace(*input)
	s.mu.Unlock()

	if label == "" {
		s.setError(target.Spec().EmptyLabel, domainErrors.KindValidation)
		return false
	}

	if outcome := target.Add(ctx, label); !outcome.OK {
		s.setError(outcome.Error, outcome.Kind)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	*input = ""
	s.err = ""
	s.kind = domainErrors.KindNone
	return true
}

// remove reports the result of this call only; the shared store may meanwhile
// hold errors raised by other sessions.
func (s *Settings) remove(ctx context.Context, target *ReferenceStore, id int64) bool {
	outcome := target.Delete(ctx, id)
	s.setError(outcome.Error, outcome.Kind)
	return outcome.OK
}

func (s *Settings) setError(msg string, kind domainErrors.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.kind = kind
}
