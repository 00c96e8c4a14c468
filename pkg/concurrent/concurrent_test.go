package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuperviseCancelsSiblingsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	var cancelled atomic.Bool

	err := Supervise(context.Background(),
		func(ctx context.Context) error {
			<-ctx.Done()
			cancelled.Store(true)
			return nil
		},
		nil,
		func(context.Context) error { return boom },
	)

	assert.ErrorIs(t, err, boom)
	assert.True(t, cancelled.Load())
}

func TestSuperviseStopsWithParent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Supervise(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	assert.NoError(t, err)
}
