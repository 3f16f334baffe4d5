package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"aochelper/internal/calendar"
)

// Fetcher retrieves the raw input for year/day from the puzzle site.
type Fetcher interface {
	FetchInput(ctx context.Context, year, day int) ([]byte, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context, year, day int) ([]byte, error)

func (f FetchFunc) FetchInput(ctx context.Context, year, day int) ([]byte, error) {
	return f(ctx, year, day)
}

// Inputs is the input cache: store first, fetch and persist on a miss.
// It is meant for single-goroutine use; concurrent first fetches of the
// same key may both reach the network.
type Inputs struct {
	store   Store
	fetcher Fetcher
	now     func() time.Time
	log     zerolog.Logger
}

// Option configures Inputs.
type Option func(*Inputs)

// WithClock overrides the clock used for the unlock check.
func WithClock(now func() time.Time) Option {
	return func(in *Inputs) { in.now = now }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(in *Inputs) { in.log = log }
}

// NewInputs builds an input cache over store and fetcher.
func NewInputs(store Store, fetcher Fetcher, opts ...Option) *Inputs {
	in := &Inputs{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Get returns the input for key, fetching it only when the store misses.
func (in *Inputs) Get(ctx context.Context, key Key) (Input, error) {
	if err := key.Validate(); err != nil {
		return Input{}, err
	}

	b, ok, err := in.store.Load(key)
	if err != nil {
		return Input{}, err
	}
	if ok {
		in.log.Debug().Stringer("key", key).Int("bytes", len(b)).Msg("input cache hit")
		return Input{Key: key, Text: string(b)}, nil
	}

	if err := calendar.Check(key.Year, key.Day, in.now()); err != nil {
		return Input{}, err
	}

	in.log.Info().Stringer("key", key).Msg("input cache miss, fetching")
	b, err = in.fetcher.FetchInput(ctx, key.Year, key.Day)
	if err != nil {
		return Input{}, fmt.Errorf("fetch %s: %w", key, err)
	}
	if err := in.store.Save(key, b); err != nil {
		return Input{}, err
	}
	in.log.Info().Stringer("key", key).Int("bytes", len(b)).Msg("input cached")
	return Input{Key: key, Text: string(b)}, nil
}

// Cached reports whether key is already in the store.
func (in *Inputs) Cached(key Key) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	_, ok, err := in.store.Load(key)
	return ok, err
}
