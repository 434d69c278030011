// Package fetch runs API reads with last-request-wins cancellation, optional TTL
// caching and stale-while-revalidate.
package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
)

// ErrSuperseded is returned by a Run that was replaced by a newer one before it finished.
var ErrSuperseded = errors.New("fetch: superseded by a newer request")

// Options configure a single Run.
type Options struct {
	// Key enables caching when non-empty.
	Key string
	TTL time.Duration
	// SWR returns a cached value immediately and refreshes it in the background.
	SWR bool
}

// State is what subscribers observe.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Stale   bool
	Err     error
}

// Result of a Run.
type Result[T any] struct {
	Data  T
	Stale bool
}

// Func performs the actual request.
type Func[T any] func(ctx context.Context) (T, error)

// Fetcher holds the state of one logical query.
type Fetcher[T any] struct {
	cache cache.Store

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State[T]
	subs   []func(State[T])

	bg sync.WaitGroup
}

// New creates a fetcher; c may be nil to disable caching.
func New[T any](c cache.Store) *Fetcher[T] {
	return &Fetcher[T]{cache: c}
}

// Subscribe registers fn to be called after every state change.
func (f *Fetcher[T]) Subscribe(fn func(State[T])) {
	f.mu.Lock()
	f.subs = append(f.subs, fn)
	f.mu.Unlock()
}

// State returns the current state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Cancel aborts the in-flight request, if any.
func (f *Fetcher[T]) Cancel() {
	f.mu.Lock()
	f.gen++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.state.Loading = false
	f.mu.Unlock()
}

// Wait blocks until background revalidations finish.
func (f *Fetcher[T]) Wait() { f.bg.Wait() }

// begin cancels the previous request and returns the token of the new one.
func (f *Fetcher[T]) begin(ctx context.Context) (uint64, context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.state.Loading = true
	f.state.Err = nil
	return f.gen, runCtx
}

// commit applies fn to the state only while gen is current, then notifies subscribers.
func (f *Fetcher[T]) commit(gen uint64, done bool, fn func(*State[T])) bool {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return false
	}
	fn(&f.state)
	if done && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	st := f.state
	subs := append([]func(State[T]){}, f.subs...)
	f.mu.Unlock()
	for _, s := range subs {
		s(st)
	}
	return true
}

func (f *Fetcher[T]) store(ctx context.Context, opts Options, v T) {
	if f.cache == nil || opts.Key == "" {
		return
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cache.Short
	}
	_ = cache.SetJSON(ctx, f.cache, opts.Key, v, ttl)
}

// Run executes fn, cancelling any previous Run of this fetcher.
func (f *Fetcher[T]) Run(ctx context.Context, opts Options, fn Func[T]) (Result[T], error) {
	var zero Result[T]
	gen, runCtx := f.begin(ctx)

	if f.cache != nil && opts.Key != "" {
		cached, ok, err := cache.GetJSON[T](runCtx, f.cache, opts.Key)
		if err == nil && ok {
			if !opts.SWR {
				if !f.commit(gen, true, func(s *State[T]) {
					*s = State[T]{Data: cached, HasData: true}
				}) {
					return zero, ErrSuperseded
				}
				return Result[T]{Data: cached}, nil
			}
			if !f.commit(gen, false, func(s *State[T]) {
				*s = State[T]{Data: cached, HasData: true, Stale: true, Loading: true}
			}) {
				return zero, ErrSuperseded
			}
			f.bg.Add(1)
			go f.revalidate(runCtx, gen, opts, fn)
			return Result[T]{Data: cached, Stale: true}, nil
		}
	}

	v, err := fn(runCtx)
	if err != nil {
		if !f.commit(gen, true, func(s *State[T]) {
			s.Loading = false
			s.Err = err
		}) {
			return zero, ErrSuperseded
		}
		return zero, err
	}
	if !f.commit(gen, true, func(s *State[T]) {
		*s = State[T]{Data: v, HasData: true}
	}) {
		return zero, ErrSuperseded
	}
	f.store(ctx, opts, v)
	return Result[T]{Data: v}, nil
}

// revalidate refreshes a stale value. On failure the stale value stays and no error is surfaced.
func (f *Fetcher[T]) revalidate(ctx context.Context, gen uint64, opts Options, fn Func[T]) {
	defer f.bg.Done()
	v, err := fn(ctx)
	if err != nil {
		f.commit(gen, true, func(s *State[T]) { s.Loading = false })
		return
	}
	if f.commit(gen, true, func(s *State[T]) {
		*s = State[T]{Data: v, HasData: true}
	}) {
		f.store(context.WithoutCancel(ctx), opts, v)
	}
}
