package jaipur

import (
	"fmt"
	"sync"
)

// GameStore holds the game engines known to a server
type GameStore interface {
	FindActiveGame(id string) (*GameEngine, bool)
	FindPendingGame(id string) (*GameEngine, bool)
	AddPendingGame(engine *GameEngine) error
	ActivateGame(id string) error
}

// InMemoryGameStore maps game ids to game engines
type InMemoryGameStore struct {
	mu      sync.Mutex
	active  map[string]*GameEngine
	pending map[string]*GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		active:  map[string]*GameEngine{},
		pending: map[string]*GameEngine{},
	}
}

func (s *InMemoryGameStore) FindActiveGame(id string) (*GameEngine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.active[id]
	return game, ok
}

func (s *InMemoryGameStore) FindPendingGame(id string) (*GameEngine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.pending[id]
	return game, ok
}

// AddPendingGame registers a newly created game awaiting players
func (s *InMemoryGameStore) AddPendingGame(engine *GameEngine) error {
	if engine == nil {
		return ErrNilGame
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pending[engine.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", engine.ID())
	}
	if _, exists := s.active[engine.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", engine.ID())
	}
	s.pending[engine.ID()] = engine
	return nil
}

// ActivateGame promotes a pending game to active once play begins
func (s *InMemoryGameStore) ActivateGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	engine, ok := s.pending[id]
	if !ok {
		return fmt.Errorf("pending game with id %s does not exist", id)
	}
	delete(s.pending, id)
	s.active[id] = engine
	return nil
}
