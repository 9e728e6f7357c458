package flights

import (
	"context"
	"sync"

	"github.com/matzehuels/structkit/pkg/bst"
)

// MemoryStore keeps flight numbers in process memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	tree bst.Tree[string]
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Add(_ context.Context, number string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tree.Insert(number), nil
}

// All returns the numbers in ascending order.
func (m *MemoryStore) All(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, m.tree.Size())
	for n := range m.tree.All() {
		out = append(out, n)
	}
	return out, nil
}
