package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockedUsecase "github.com/rocketscienceinc/tictactoe-pro/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-pro/testing/suite"
)

func TestSweeper_SweepOnce(t *testing.T) {
	t.Run("Every active match is swept", func(t *testing.T) {
		// Given
		target := mockedUsecase.NewMocksweepTarget(t)
		target.EXPECT().ActiveMatchIDs(mock.Anything).Return([]string{"m-1", "m-2", "m-3"}, nil)
		target.EXPECT().Sweep(mock.Anything, "m-1").Return(nil).Once()
		target.EXPECT().Sweep(mock.Anything, "m-2").Return(nil).Once()
		target.EXPECT().Sweep(mock.Anything, "m-3").Return(nil).Once()

		sweeper := NewSweeper(suite.NewLogger(), target, time.Second, 2)

		// When
		err := sweeper.SweepOnce(context.Background())

		// Then
		require.NoError(t, err)
	})

	t.Run("A failing match doesn't stop the others", func(t *testing.T) {
		target := mockedUsecase.NewMocksweepTarget(t)
		target.EXPECT().ActiveMatchIDs(mock.Anything).Return([]string{"m-1", "m-2"}, nil)
		target.EXPECT().Sweep(mock.Anything, "m-1").Return(errors.New("boom")).Once()
		target.EXPECT().Sweep(mock.Anything, "m-2").Return(nil).Once()

		sweeper := NewSweeper(suite.NewLogger(), target, time.Second, 1)

		assert.NoError(t, sweeper.SweepOnce(context.Background()))
	})

	t.Run("Listing error is returned", func(t *testing.T) {
		target := mockedUsecase.NewMocksweepTarget(t)
		target.EXPECT().ActiveMatchIDs(mock.Anything).Return(nil, errors.New("redis down"))

		sweeper := NewSweeper(suite.NewLogger(), target, time.Second, 1)

		assert.Error(t, sweeper.SweepOnce(context.Background()))
	})
}

func TestSweeper_Run(t *testing.T) {
	// Given: a target that is polled on every tick
	var passes atomic.Int32

	target := mockedUsecase.NewMocksweepTarget(t)
	target.EXPECT().ActiveMatchIDs(mock.Anything).RunAndReturn(func(context.Context) ([]string, error) {
		passes.Add(1)
		return nil, nil
	})

	sweeper := NewSweeper(suite.NewLogger(), target, 10*time.Millisecond, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// When
	go func() {
		done <- sweeper.Run(ctx)
	}()

	// Then: it keeps sweeping until cancelled
	require.Eventually(t, func() bool { return passes.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
