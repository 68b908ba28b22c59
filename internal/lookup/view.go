// Package lookup holds the state of one weather lookup screen.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"weather-lookup/internal/models"
	"weather-lookup/pkg/logger"
)

// Fetcher resolves a city to its current weather.
type Fetcher interface {
	FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error)
}

// View owns the query text and the request status of a single screen.
//
// Overlapping submissions are resolved by sequence number: every Submit takes
// the next number and only the outcome of the most recent one is applied.
// Earlier outcomes that arrive late are dropped, and the view stays Loading
// until the latest submission resolves.
type View struct {
	fetcher Fetcher
	l       *logger.Logger

	mu     sync.Mutex
	query  string
	status Status
	seq    uint64
}

func NewView(fetcher Fetcher, l *logger.Logger) *View {
	return &View{
		fetcher: fetcher,
		l:       l,
		status:  IdleStatus(),
	}
}

// SetQuery replaces the query text. It never triggers a request.
func (v *View) SetQuery(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query = text
}

func (v *View) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.query
}

func (v *View) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.status
}

// Submit looks up the current query and returns the resulting status. A blank
// query is a no-op. Submit never returns an error: every failure becomes a
// Failed status.
func (v *View) Submit(ctx context.Context) Status {
	v.mu.Lock()
	if strings.TrimSpace(v.query) == "" {
		status := v.status
		v.mu.Unlock()
		return status
	}

	v.seq++
	seq := v.seq
	query := v.query
	v.status = LoadingStatus()
	v.mu.Unlock()

	next := v.fetch(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		v.l.Debug("discarding superseded lookup result", map[string]any{
			"query":  query,
			"seq":    seq,
			"latest": v.seq,
		})
		return v.status
	}

	v.status = next

	return v.status
}

func (v *View) fetch(ctx context.Context, query string) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			v.l.Error(fmt.Errorf("lookup panicked: %v", r), map[string]any{"query": query})
			status = FailedStatus(models.GenericErrorMessage)
		}
	}()

	reading, err := v.fetcher.FetchCurrent(ctx, query)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			v.l.Warning("lookup failed", map[string]any{"query": query, "err": err})
		}
		return FailedStatus(models.UserMessage(err))
	}

	return SuccessStatus(reading)
}
