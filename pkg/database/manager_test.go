package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/pkg/apperrors"
)

func TestGetWithoutURIFailsWithConfigurationError(t *testing.T) {
	mgr := NewManager("", "cinesine", zap.NewNop().Sugar())

	_, err := mgr.Get(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrMissingMongoURI)
	assert.Equal(t, StateDisconnected, mgr.State())
}

func TestGetWithoutURIFailsForEveryConcurrentCaller(t *testing.T) {
	mgr := NewManager("", "cinesine", zap.NewNop().Sugar())

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = mgr.Get(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, apperrors.ErrMissingMongoURI)
	}
}

func TestInitialStateIsDisconnected(t *testing.T) {
	mgr := NewManager("mongodb://localhost:27017", "cinesine", zap.NewNop().Sugar())
	assert.Equal(t, StateDisconnected, mgr.State())
}

func TestDisconnectWithoutConnectionIsANoOp(t *testing.T) {
	mgr := NewManager("mongodb://localhost:27017", "cinesine", zap.NewNop().Sugar())
	assert.NoError(t, mgr.Disconnect(context.Background()))
	assert.Equal(t, StateDisconnected, mgr.State())
}
