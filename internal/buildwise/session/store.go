package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Store keeps the most recently used workspaces in memory. Evicted
// workspaces are gone; nothing is persisted.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Workspace]
}

func NewStore(size int) (*Store, error) {
	cache, err := lru.New[string, *Workspace](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Get returns the workspace for id if it is still cached.
func (s *Store) Get(id string) (*Workspace, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// Open returns the workspace for id, or a new one under a fresh id when id is
// empty or unknown. created reports whether a new workspace was made.
func (s *Store) Open(id string) (ws *Workspace, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.Get(id); ok {
		return ws, false
	}
	ws = NewWorkspace(uuid.NewString())
	s.cache.Add(ws.ID(), ws)
	return ws, true
}

func (s *Store) Len() int { return s.cache.Len() }
