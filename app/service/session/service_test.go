package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnknownUserIsZero(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, State{}, svc.Get(42))
	assert.Equal(t, 0, svc.Len())
}

func TestSaveAndGet(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	state := State{
		Attributes: Attributes{Name: "гольфы"},
		Collecting: true,
	}
	svc.Save(1, state)

	assert.Equal(t, state, svc.Get(1))
	assert.Equal(t, State{}, svc.Get(2))
	assert.Equal(t, 1, svc.Len())
}

func TestConcurrentUsersDoNotInterfere(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := int64(i)
			svc.Save(userID, State{Attributes: Attributes{Size: "4"}})
			_ = svc.Get(userID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, svc.Len())
}
