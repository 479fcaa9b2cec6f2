package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/catalog"
)

func TestGuestSessionIsDefault(t *testing.T) {
	m := NewManager()
	assert.Same(t, m.Get(""), m.Get("guest"))
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager()
	a := m.New()
	b := m.New()
	assert.NotEqual(t, a, b)

	_, err := m.Get(a).Add("apple", catalog.CategoryFruits, 100)
	require.NoError(t, err)

	assert.Len(t, m.Get(a).Foods(), 1)
	assert.Empty(t, m.Get(b).Foods())
	assert.Empty(t, m.Get("").Foods())
}

func TestGetCreatesOnFirstUse(t *testing.T) {
	m := NewManager()
	sel := m.Get("some-client-id")
	assert.NotNil(t, sel)
	assert.Same(t, sel, m.Get("some-client-id"))
}

func TestConcurrentRequestsOnOneSession(t *testing.T) {
	// Parallel requests can carry the same session id; the selection they
	// share must stay consistent.
	m := NewManager()
	id := m.New()
	const workers = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sel := m.Get(id)
			_, err := sel.Add("apple", catalog.CategoryFruits, 100)
			assert.NoError(t, err)
			sel.Totals()
		}()
	}
	wg.Wait()

	assert.Len(t, m.Get(id).Foods(), workers)
}
