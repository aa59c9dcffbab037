/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package suggest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// blockingSuggester returns canned results per query, optionally holding
// each lookup until released.
type blockingSuggester struct {
	mu      sync.Mutex
	results map[string][]string
	gates   map[string]chan struct{}
	calls   []string
}

func (b *blockingSuggester) Suggest(_ context.Context, query string) []string {
	b.mu.Lock()
	b.calls = append(b.calls, query)
	gate := b.gates[query]
	res := b.results[query]
	b.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return res
}

func (b *blockingSuggester) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

type recorder struct {
	mu        sync.Mutex
	delivered [][]string
}

func (r *recorder) deliver(_ string, suggestions []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, suggestions)
}

func (r *recorder) all() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.delivered
}

func TestNotifyDelivers(t *testing.T) {
	sg := &blockingSuggester{results: map[string][]string{
		"photos": {"photosynthesis", "photos of cats"},
	}}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(0))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	s.Notify(context.Background(), "photos")
	s.Wait()

	want := []string{"photosynthesis", "photos of cats"}
	if diff := cmp.Diff(want, s.Latest()); diff != "" {
		t.Errorf("Latest() mismatch (-want +got):\n%s", diff)
	}
	if got := rec.all(); len(got) != 1 {
		t.Errorf("delivered %d results, want 1", len(got))
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	slowGate := make(chan struct{})
	sg := &blockingSuggester{
		results: map[string][]string{
			"new":  {"newton", "news"},
			"newt": {"newton's laws"},
		},
		gates: map[string]chan struct{}{"new": slowGate},
	}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(0))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	ctx := context.Background()
	s.Notify(ctx, "new")
	// Wait for the first lookup to actually start before superseding it.
	for sg.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	s.Notify(ctx, "newt")
	for sg.callCount() < 2 {
		time.Sleep(time.Millisecond)
	}
	// Release the stale lookup; its result must be dropped on arrival.
	close(slowGate)
	s.Wait()

	if diff := cmp.Diff([]string{"newton's laws"}, s.Latest()); diff != "" {
		t.Errorf("Latest() mismatch (-want +got):\n%s", diff)
	}
	for _, d := range rec.all() {
		if len(d) == 2 {
			t.Errorf("stale result %v was delivered", d)
		}
	}
}

func TestDebounceSkipsSupersededLookup(t *testing.T) {
	sg := &blockingSuggester{results: map[string][]string{
		"ab":  {"a-b"},
		"abc": {"a-b-c"},
	}}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(50*time.Millisecond), WithMinQueryLength(2))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	ctx := context.Background()
	s.Notify(ctx, "ab")
	s.Notify(ctx, "abc") // supersedes before the first debounce elapses
	s.Wait()

	sg.mu.Lock()
	calls := append([]string(nil), sg.calls...)
	sg.mu.Unlock()
	for _, q := range calls {
		if q == "ab" {
			t.Error("superseded query was still looked up")
		}
	}
	if diff := cmp.Diff([]string{"a-b-c"}, s.Latest()); diff != "" {
		t.Errorf("Latest() mismatch (-want +got):\n%s", diff)
	}
}

func TestShortQueryClears(t *testing.T) {
	sg := &blockingSuggester{results: map[string][]string{"abc": {"x"}}}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(0))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	ctx := context.Background()
	s.Notify(ctx, "abc")
	s.Wait()
	s.Notify(ctx, "ab") // below the 3-rune default
	s.Wait()

	if got := s.Latest(); got != nil {
		t.Errorf("Latest() = %v, want nil after short query", got)
	}
	if sg.callCount() != 1 {
		t.Errorf("short query triggered a lookup")
	}
}

func TestCancel(t *testing.T) {
	gate := make(chan struct{})
	sg := &blockingSuggester{
		results: map[string][]string{"query": {"r"}},
		gates:   map[string]chan struct{}{"query": gate},
	}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(0))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	s.Notify(context.Background(), "query")
	for sg.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	s.Cancel()
	close(gate)
	s.Wait()

	if got := s.Latest(); got != nil {
		t.Errorf("Latest() = %v, want nil after cancel", got)
	}
	if got := rec.all(); len(got) != 0 {
		t.Errorf("cancelled lookup delivered %v", got)
	}
}

func TestContextCancellationStopsPending(t *testing.T) {
	sg := &blockingSuggester{results: map[string][]string{"abc": {"x"}}}
	rec := &recorder{}
	s, err := NewSession(sg, rec.deliver, WithDebounce(time.Hour))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Notify(ctx, "abc")
	cancel()
	s.Wait()

	if sg.callCount() != 0 {
		t.Error("lookup ran despite cancelled context")
	}
}
