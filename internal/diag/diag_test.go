package diag

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_NoHandlerIsSilent(t *testing.T) {
	SetHandler(nil)
	// Must not panic.
	Report("op", errors.New("boom"))
}

func TestReport_ForwardsToHandler(t *testing.T) {
	defer SetHandler(nil)

	var gotOp string
	var gotErr error
	SetHandler(func(op string, err error) {
		gotOp = op
		gotErr = err
	})

	boom := errors.New("boom")
	Report("deserialize", boom)

	assert.Equal(t, "deserialize", gotOp)
	assert.Equal(t, boom, gotErr)
}

func TestReport_NilErrorIgnored(t *testing.T) {
	defer SetHandler(nil)

	called := false
	SetHandler(func(op string, err error) { called = true })

	Report("op", nil)

	assert.False(t, called)
}

func TestReport_ConcurrentUse(t *testing.T) {
	defer SetHandler(nil)

	var mu sync.Mutex
	count := 0
	SetHandler(func(op string, err error) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Report("op", errors.New("boom"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, count)
}
