/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package suggest runs the interactive autosuggest policy on top of a
// suggestion backend: keystroke notifications are debounced, and a result
// that arrives after its triggering input has been superseded is discarded
// rather than delivered. No network-level cancellation is attempted;
// dropping the stale result is sufficient.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	defaultDebounce  = 300 * time.Millisecond
	defaultMinLength = 3
)

// Suggester produces completions for a partial query. generate.Client
// satisfies this; it never returns an error, only an empty result.
type Suggester interface {
	Suggest(ctx context.Context, query string) []string
}

// Session tracks the most recent query and delivers only results that are
// still current when they arrive. A new Notify supersedes any pending or
// in-flight lookup.
type Session struct {
	suggester Suggester
	deliver   func(query string, suggestions []string)
	debounce  time.Duration
	minLength int

	mu     sync.Mutex
	gen    uint64
	latest []string

	wg sync.WaitGroup
}

// Option configures a Session.
type Option func(*Session) error

// WithDebounce sets the quiet period after a keystroke before a lookup is
// issued.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) error {
		if d < 0 {
			return fmt.Errorf("debounce cannot be negative, got %v", d)
		}
		s.debounce = d
		return nil
	}
}

// WithMinQueryLength sets the minimum trimmed query length that triggers a
// lookup; shorter input clears the suggestions instead.
func WithMinQueryLength(n int) Option {
	return func(s *Session) error {
		if n < 1 {
			return fmt.Errorf("minimum query length must be at least 1, got %d", n)
		}
		s.minLength = n
		return nil
	}
}

// NewSession creates a Session delivering results through the given
// callback. The callback runs on a worker goroutine and must be safe to
// call from outside the caller's goroutine.
func NewSession(suggester Suggester, deliver func(query string, suggestions []string), options ...Option) (*Session, error) {
	if suggester == nil {
		return nil, errors.New("suggester is required")
	}
	if deliver == nil {
		return nil, errors.New("deliver callback is required")
	}
	s := &Session{
		suggester: suggester,
		deliver:   deliver,
		debounce:  defaultDebounce,
		minLength: defaultMinLength,
	}
	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return s, nil
}

// Notify records a new keystroke state. Any pending or in-flight lookup for
// earlier input becomes stale; its result will be dropped on arrival.
func (s *Session) Notify(ctx context.Context, query string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if len(strings.TrimSpace(query)) < s.minLength {
		s.publish(gen, query, nil)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if !s.current(gen) {
			// Superseded while waiting out the debounce; skip the lookup.
			return
		}

		suggestions := s.suggester.Suggest(ctx, query)
		s.publish(gen, query, suggestions)
	}()
}

// Cancel invalidates any pending or in-flight lookup without issuing a new
// one, e.g. when the input is dismissed.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.gen++
	s.latest = nil
	s.mu.Unlock()
}

// Latest returns the most recently delivered suggestions.
func (s *Session) Latest() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Wait blocks until all in-flight lookups have settled. Test helper.
func (s *Session) Wait() {
	s.wg.Wait()
}

// publish delivers suggestions unless gen has been superseded.
func (s *Session) publish(gen uint64, query string, suggestions []string) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.latest = suggestions
	s.mu.Unlock()
	s.deliver(query, suggestions)
}

// current reports whether gen is still the newest notification.
func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}
