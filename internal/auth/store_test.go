package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore()
	assert.Nil(t, store.Get())

	credential := &Credential{TokenType: "Bearer", AccessToken: "one"}
	store.Set(credential)
	assert.Same(t, credential, store.Get())

	replacement := &Credential{TokenType: "Bearer", AccessToken: "two"}
	store.Set(replacement)
	assert.Same(t, replacement, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestCredentialStoreConcurrentSwap(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore()
	store.Set(&Credential{TokenType: "Bearer", AccessToken: "seed", IssuedAt: time.Now()})

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				store.Set(&Credential{TokenType: "Bearer", AccessToken: "rotated"})
			}
		}()

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				credential := store.Get()
				require.NotNil(t, credential)
				// Whole-value swaps mean a reader never sees a half-written
				// credential.
				assert.Equal(t, "Bearer", credential.TokenType)
			}
		}()
	}

	wg.Wait()
}
