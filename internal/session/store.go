package session

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"

	"weather-lookup/internal/lookup"
	"weather-lookup/pkg/cache"
	"weather-lookup/pkg/logger"
)

// Store keeps one lookup view per browser session. Views live in memory only
// and expire after ttl without use.
type Store struct {
	views   *cache.Cache[string, lookup.View]
	fetcher lookup.Fetcher
	l       *logger.Logger
}

func NewStore(fetcher lookup.Fetcher, ttl time.Duration, clk clock.Clock, l *logger.Logger) *Store {
	return &Store{
		views:   cache.New[string, lookup.View](ttl, clk),
		fetcher: fetcher,
		l:       l,
	}
}

// Acquire returns the view for id. Unknown, expired or malformed ids get a
// fresh view under a new id, which is returned alongside it.
func (s *Store) Acquire(id string) (*lookup.View, string) {
	if _, err := uuid.Parse(id); err == nil {
		if view := s.views.Get(id); view != nil {
			return view, id
		}
	}

	if removed := s.views.DeleteExpired(); removed > 0 {
		s.l.Debug("expired lookup sessions removed", map[string]any{"count": removed})
	}

	id = uuid.NewString()
	view := lookup.NewView(s.fetcher, s.l)
	s.views.Set(id, view)

	s.l.Debug("lookup session created", map[string]any{"session": id})

	return view, id
}

func (s *Store) Len() int {
	return s.views.Len()
}
