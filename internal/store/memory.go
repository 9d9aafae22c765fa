// internal/store/memory.go
//
// In-memory implementation of the round Store.
// Rounds live only for the lifetime of the process; nothing is persisted.
//
// Characteristics:
//   - Stores game.Round values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update and UpdateAll apply reducers under the write lock, so every
//     round sees its events (submit, tick, restart) one at a time.
//   - Each round may carry an expiry; Prune drops rounds past it.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordsgame/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save adds or replaces a round. A zero expires keeps it until deleted.
	Save(ctx context.Context, r game.Round, expires time.Time) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (game.Round, error)

	// Update applies fn to the round with id and stores the result.
	// If fn returns an error the stored round is left untouched and
	// the current round is returned alongside the error.
	Update(ctx context.Context, id string, fn func(game.Round) (game.Round, error)) (game.Round, error)

	// UpdateAll applies fn to every stored round.
	UpdateAll(ctx context.Context, fn func(game.Round) game.Round)

	// Delete removes a round; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Prune removes rounds whose expiry is not after now and returns
	// how many were dropped.
	Prune(ctx context.Context, now time.Time) int

	// Len reports how many rounds are stored.
	Len() int
}

// entry is a stored round with its optional expiry.
type entry struct {
	round   game.Round
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !e.expires.After(now)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex     // guards rounds
	rounds map[string]entry // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]entry)}
}

func (m *memory) Save(ctx context.Context, r game.Round, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = entry{round: r, expires: expires}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.rounds[id]; ok {
		return e.round, nil
	}
	return game.Round{}, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(game.Round) (game.Round, error)) (game.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rounds[id]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	next, err := fn(e.round)
	if err != nil {
		return e.round, err
	}
	e.round = next
	m.rounds[id] = e
	return next, nil
}

func (m *memory) UpdateAll(ctx context.Context, fn func(game.Round) game.Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.rounds {
		e.round = fn(e.round)
		m.rounds[id] = e
	}
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.rounds {
		if e.expired(now) {
			delete(m.rounds, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
