package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hanamedu/academy-backend/model"
	"github.com/hanamedu/academy-backend/sheets"
	"github.com/hanamedu/academy-backend/util"
)

var logger = sheets.InitLogger() // setup the logger

// RowSource is the slice of the sheets client the store needs. Narrowed to an
// interface so tests can load canned rows.
type RowSource interface {
	FetchRows(ctx context.Context, gid string) ([]sheets.Row, error)
	FetchDataAsOf(ctx context.Context, fallback string) (string, error)
}

// Ensure compile-time interface check
var _ RowSource = (*sheets.Client)(nil)

// Store holds the academy collection for the current session. Each Load
// replaces the collection wholesale; there are no partial-result states.
type Store struct {
	source       RowSource
	dataGID      string
	fallbackAsOf string

	mu        sync.RWMutex
	academies []*model.Academy
	dataAsOf  string
	loadedAt  time.Time
}

// NewStore returns an empty store reading from source.
func NewStore(source RowSource, dataGID, fallbackAsOf string) *Store {
	return &Store{source: source, dataGID: dataGID, fallbackAsOf: fallbackAsOf}
}

// Load fetches the directory rows and the data-as-of label concurrently,
// transforms the rows, and swaps in the new collection. When either fetch
// fails the whole load fails and the previous collection is kept untouched.
func (s *Store) Load(ctx context.Context) error {
	var (
		rows   []sheets.Row
		asOf   string
		g, gtx = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		var err error
		rows, err = s.source.FetchRows(gtx, s.dataGID)
		return err
	})
	g.Go(func() error {
		var err error
		asOf, err = s.source.FetchDataAsOf(gtx, s.fallbackAsOf)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("directory load failed: %w", err)
	}

	academies := Transform(rows)

	s.mu.Lock()
	s.academies = academies
	s.dataAsOf = asOf
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.Sugar().Infof("Directory loaded: %d academies, data as of %q", len(academies), asOf)
	return nil
}

// Academies returns the current collection. Callers must treat the entries as
// read-only.
func (s *Store) Academies() []*model.Academy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.academies
}

// DataAsOf returns the label describing which snapshot of the source sheet is
// loaded.
func (s *Store) DataAsOf() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataAsOf
}

// LoadedAt returns when the current collection was loaded; zero before the
// first successful load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Count returns the number of loaded academies.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.academies)
}

// Get returns the first academy whose report number matches id.
func (s *Store) Get(id string) (*model.Academy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, academy := range s.academies {
		if academy.ID == id {
			return academy, true
		}
	}
	return nil, false
}

// buildingKey reduces an address to its region-stripped street-and-number
// prefix, so units in the same building compare equal regardless of floor or
// room suffix.
func buildingKey(address string) string {
	return util.BaseAddress(util.CleanAddress(address))
}

// SameBuilding returns every academy sharing the given academy's building
// key, including the academy itself. Used by the detail view's same-building
// cross reference.
func (s *Store) SameBuilding(academy *model.Academy) []*model.Academy {
	key := buildingKey(academy.Address)
	if key == "" {
		return []*model.Academy{academy}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var peers []*model.Academy
	for _, other := range s.academies {
		if buildingKey(other.Address) == key {
			peers = append(peers, other)
		}
	}
	return peers
}
