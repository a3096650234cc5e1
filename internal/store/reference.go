package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/orderdesk/internal/adapter/backend"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// ReferenceSpec describes one reference collection exposed by the backend.
type ReferenceSpec struct {
	Name       string
	Path       string
	LabelField string

	FetchFailed  string
	AddFailed    string
	DeleteFailed string
	EmptyLabel   string

	// InUseDetail is the backend detail returned when an entity is still referenced by orders.
	InUseDetail  string
	InUseMessage string
}

// CategoriesSpec returns the vehicle category collection mounted at path.
func CategoriesSpec(path string) ReferenceSpec {
	return ReferenceSpec{
		Name:         "categories",
		Path:         path,
		LabelField:   "name",
		FetchFailed:  "Chyba pri načítaní kategórií",
		AddFailed:    "Chyba pri pridávaní kategórie",
		DeleteFailed: "Chyba pri mazaní kategórie",
		EmptyLabel:   "Zadajte názov kategórie",
		InUseDetail:  "Cannot delete category that is in use",
		InUseMessage: "Túto kategóriu nie je možné vymazať, pretože je používaná v objednávkach",
	}
}

// StatusesSpec returns the order status collection mounted at path.
func StatusesSpec(path string) ReferenceSpec {
	return ReferenceSpec{
		Name:         "statuses",
		Path:         path,
		LabelField:   "status",
		FetchFailed:  "Chyba pri načítaní stavov",
		AddFailed:    "Chyba pri pridávaní stavu",
		DeleteFailed: "Chyba pri mazaní stavu",
		EmptyLabel:   "Zadajte názov stavu",
		InUseDetail:  "Cannot delete status that is in use",
		InUseMessage: "Tento stav nie je možné vymazať, pretože je používaný v objednávkach",
	}
}

// ReferenceState is a point-in-time copy of a reference store.
type ReferenceState struct {
	Items   model.ReferenceCollection
	Loading bool
	Error   string
	Kind    domainErrors.Kind
}

// ReferenceStore keeps an id to label mapping in sync with a backend collection.
type ReferenceStore struct {
	client backend.Client
	spec   ReferenceSpec
	logger *slog.Logger

	mu       sync.Mutex
	items    model.ReferenceCollection
	inflight int
	err      string
	kind     domainErrors.Kind
	seq      sequencer
}

// NewReferenceStore creates an empty store for spec.
func NewReferenceStore(client backend.Client, spec ReferenceSpec, logger *slog.Logger) *ReferenceStore {
	return &ReferenceStore{
		client: client,
		spec:   spec,
		logger: logger,
		items:  model.ReferenceCollection{},
	}
}

// NewCategoriesStore creates the vehicle category store.
func NewCategoriesStore(client backend.Client, path string, logger *slog.Logger) *ReferenceStore {
	return NewReferenceStore(client, CategoriesSpec(path), logger)
}

// NewStatusesStore creates the order status store.
func NewStatusesStore(client backend.Client, path string, logger *slog.Logger) *ReferenceStore {
	return NewReferenceStore(client, StatusesSpec(path), logger)
}

// Spec returns the collection description the store was built with.
func (s *ReferenceStore) Spec() ReferenceSpec {
	return s.spec
}

// Outcome is the result of a single store operation as seen by its caller.
// Requests made by other callers in the meantime never change it.
type Outcome struct {
	OK    bool
	Error string
	Kind  domainErrors.Kind
}

func (o Outcome) err() error {
	if o.OK {
		return nil
	}
	return errors.New(o.Error)
}

func failure(err error, fallback string) Outcome {
	return Outcome{Error: errorMessage(err, fallback), Kind: classify(err)}
}

// FetchAll replaces the mapping with the backend collection.
// On failure the previous mapping is kept and the error is recorded.
func (s *ReferenceStore) FetchAll(ctx context.Context) bool {
	return s.fetch(ctx).OK
}

func (s *ReferenceStore) fetch(ctx context.Context) Outcome {
	s.mu.Lock()
	seq := s.seq.next()
	s.inflight++
	s.setErrorLocked(nil, "")
	s.mu.Unlock()

	var items model.ReferenceCollection
	resp, err := s.client.Get(ctx, s.spec.Path, nil)
	if err == nil {
		if items, err = Normalize(resp.Data, s.spec.LabelField); err != nil {
			err = fmt.Errorf("%w: %w", errMalformedPayload, err)
		}
	}
	outcome := Outcome{OK: true}
	if err != nil {
		outcome = failure(err, s.spec.FetchFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if !s.seq.accept(seq) {
		s.logger.Debug("stale reference response dropped", slog.String("collection", s.spec.Name))
		return outcome
	}
	if err != nil {
		s.logger.Warn("reference fetch failed", slog.String("collection", s.spec.Name), slog.String("error", err.Error()))
		s.err = outcome.Error
		s.kind = outcome.Kind
		return outcome
	}
	s.items = items
	s.setErrorLocked(nil, "")
	return outcome
}

// Add creates label on the backend and resynchronizes the mapping.
// OK reports whether the creation request succeeded; a failed re-fetch only fills Error.
func (s *ReferenceStore) Add(ctx context.Context, label string) Outcome {
	s.clearError()

	payload := map[string]string{s.spec.LabelField: label}
	if _, err := s.client.Post(ctx, s.spec.Path, payload); err != nil {
		return s.fail(failure(err, s.spec.AddFailed))
	}

	refetch := s.fetch(ctx)
	return Outcome{OK: true, Error: refetch.Error, Kind: refetch.Kind}
}

// Delete removes id on the backend and resynchronizes the mapping.
func (s *ReferenceStore) Delete(ctx context.Context, id int64) Outcome {
	s.clearError()

	if _, err := s.client.Delete(ctx, s.itemPath(id)); err != nil {
		if s.inUse(err) {
			return s.fail(Outcome{Error: s.spec.InUseMessage, Kind: domainErrors.KindConflict})
		}
		return s.fail(failure(err, s.spec.DeleteFailed))
	}

	refetch := s.fetch(ctx)
	return Outcome{OK: true, Error: refetch.Error, Kind: refetch.Kind}
}

// Snapshot returns a copy of the current state.
func (s *ReferenceStore) Snapshot() ReferenceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReferenceState{
		Items:   s.items.Clone(),
		Loading: s.inflight > 0,
		Error:   s.err,
		Kind:    s.kind,
	}
}

func (s *ReferenceStore) itemPath(id int64) string {
	return strings.TrimRight(s.spec.Path, "/") + "/" + strconv.FormatInt(id, 10)
}

func (s *ReferenceStore) inUse(err error) bool {
	be, ok := backend.AsError(err)
	return ok && be.StatusCode == http.StatusBadRequest && be.Detail == s.spec.InUseDetail
}

func (s *ReferenceStore) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErrorLocked(nil, "")
}

// fail records outcome as the store error and returns it.
func (s *ReferenceStore) fail(outcome Outcome) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = outcome.Error
	s.kind = outcome.Kind
	return outcome
}

func (s *ReferenceStore) setErrorLocked(err error, fallback string) {
	s.err = errorMessage(err, fallback)
	s.kind = classify(err)
}

// FetchReferences refreshes both stores concurrently.
// When both fail the category failure is reported.
func FetchReferences(ctx context.Context, categories, statuses *ReferenceStore) Outcome {
	var categoryOutcome, statusOutcome Outcome

	var g errgroup.Group
	g.Go(func() error {
		categoryOutcome = categories.fetch(ctx)
		return categoryOutcome.err()
	})
	g.Go(func() error {
		statusOutcome = statuses.fetch(ctx)
		return statusOutcome.err()
	})
	if err := g.Wait(); err == nil {
		return Outcome{OK: true}
	}

	if !categoryOutcome.OK {
		return categoryOutcome
	}
	return statusOutcome
}
