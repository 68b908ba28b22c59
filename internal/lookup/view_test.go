package lookup_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-lookup/internal/lookup"
	"weather-lookup/internal/models"
	"weather-lookup/pkg/logger"
)

type stubFetcher struct {
	mu      sync.Mutex
	calls   []string
	results map[string]stubResult
}

type stubResult struct {
	reading models.WeatherReading
	err     error
	// gate, when set, blocks the call until closed.
	gate    chan struct{}
	started chan struct{}
}

func (f *stubFetcher) FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error) {
	f.mu.Lock()
	f.calls = append(f.calls, city)
	res := f.results[city]
	f.mu.Unlock()

	if res.started != nil {
		close(res.started)
	}
	if res.gate != nil {
		<-res.gate
	}

	return res.reading, res.err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var london = models.WeatherReading{Location: "London", Country: "GB", Condition: "Clear", Temperature: 18.2}

func TestView_InitialState(t *testing.T) {
	v := lookup.NewView(&stubFetcher{}, logger.NewNop())

	assert.Equal(t, lookup.Idle, v.Status().State())
	assert.Empty(t, v.Query())
}

func TestView_SetQueryHasNoSideEffects(t *testing.T) {
	f := &stubFetcher{}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("London")

	assert.Equal(t, "London", v.Query())
	assert.Equal(t, lookup.Idle, v.Status().State())
	assert.Zero(t, f.callCount())
}

func TestView_SubmitBlankQueryIsNoop(t *testing.T) {
	f := &stubFetcher{results: map[string]stubResult{"London": {reading: london}}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("   \t")
	status := v.Submit(context.Background())
	assert.Equal(t, lookup.Idle, status.State())
	assert.Zero(t, f.callCount())

	// A blank submit after a success leaves the success in place.
	v.SetQuery("London")
	v.Submit(context.Background())
	v.SetQuery(" ")
	status = v.Submit(context.Background())

	assert.Equal(t, lookup.Success, status.State())
	assert.Equal(t, 1, f.callCount())
}

func TestView_SubmitSuccess(t *testing.T) {
	f := &stubFetcher{results: map[string]stubResult{"London": {reading: london}}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("London")
	status := v.Submit(context.Background())

	require.Equal(t, lookup.Success, status.State())
	reading, ok := status.Reading()
	require.True(t, ok)
	assert.Equal(t, "London", reading.Location)

	msg, failed := status.Message()
	assert.False(t, failed)
	assert.Empty(t, msg)
	assert.Equal(t, []string{"London"}, f.calls)
}

func TestView_FailureClearsPreviousReading(t *testing.T) {
	f := &stubFetcher{results: map[string]stubResult{
		"London": {reading: london},
		"Zzzzz":  {err: models.ProviderRejected(http.StatusNotFound, nil)},
	}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("London")
	v.Submit(context.Background())

	v.SetQuery("Zzzzz")
	status := v.Submit(context.Background())

	require.Equal(t, lookup.Failed, status.State())
	msg, ok := status.Message()
	require.True(t, ok)
	assert.Equal(t, "City not found", msg)

	_, hasReading := v.Status().Reading()
	assert.False(t, hasReading)
}

func TestView_SuccessClearsPreviousError(t *testing.T) {
	f := &stubFetcher{results: map[string]stubResult{
		"London": {reading: london},
		"Zzzzz":  {err: models.NetworkFailure(errors.New("dial tcp: refused"))},
	}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("Zzzzz")
	status := v.Submit(context.Background())
	msg, _ := status.Message()
	assert.Equal(t, "Could not reach the weather service", msg)

	v.SetQuery("London")
	status = v.Submit(context.Background())

	assert.Equal(t, lookup.Success, status.State())
	_, failed := status.Message()
	assert.False(t, failed)
}

func TestView_UnknownErrorUsesGenericMessage(t *testing.T) {
	f := &stubFetcher{results: map[string]stubResult{"London": {err: errors.New("opaque")}}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("London")
	msg, ok := v.Submit(context.Background()).Message()

	require.True(t, ok)
	assert.Equal(t, models.GenericErrorMessage, msg)
}

func TestView_LoadingWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	f := &stubFetcher{results: map[string]stubResult{"London": {reading: london, gate: gate, started: started}}}
	v := lookup.NewView(f, logger.NewNop())
	v.SetQuery("London")

	done := make(chan lookup.Status)
	go func() { done <- v.Submit(context.Background()) }()

	<-started
	assert.Equal(t, lookup.Loading, v.Status().State())

	close(gate)
	assert.Equal(t, lookup.Success, (<-done).State())
	assert.Equal(t, lookup.Success, v.Status().State())
}

func TestView_SupersededResultIsDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	slowGate := make(chan struct{})
	paris := models.WeatherReading{Location: "Paris", Country: "FR"}

	f := &stubFetcher{results: map[string]stubResult{
		"London": {reading: london, gate: slowGate, started: slowStarted},
		"Paris":  {reading: paris},
	}}
	v := lookup.NewView(f, logger.NewNop())

	v.SetQuery("London")
	first := make(chan lookup.Status)
	go func() { first <- v.Submit(context.Background()) }()
	<-slowStarted

	v.SetQuery("Paris")
	second := v.Submit(context.Background())
	reading, ok := second.Reading()
	require.True(t, ok)
	assert.Equal(t, "Paris", reading.Location)

	close(slowGate)
	stale := <-first

	reading, ok = stale.Reading()
	require.True(t, ok)
	assert.Equal(t, "Paris", reading.Location, "late London response must not overwrite Paris")

	reading, _ = v.Status().Reading()
	assert.Equal(t, "Paris", reading.Location)
}

type panickingFetcher struct{}

func (panickingFetcher) FetchCurrent(context.Context, string) (models.WeatherReading, error) {
	panic("index out of range")
}

func TestView_PanicBecomesFailure(t *testing.T) {
	v := lookup.NewView(panickingFetcher{}, logger.NewNop())
	v.SetQuery("London")

	status := v.Submit(context.Background())

	assert.Equal(t, lookup.Failed, status.State())
	msg, _ := status.Message()
	assert.Equal(t, models.GenericErrorMessage, msg)
}

func TestStatus_StateString(t *testing.T) {
	assert.Equal(t, "idle", lookup.Idle.String())
	assert.Equal(t, "loading", lookup.Loading.String())
	assert.Equal(t, "success", lookup.Success.String())
	assert.Equal(t, "failed", lookup.Failed.String())
}
