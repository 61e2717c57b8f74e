package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, nil)
	require.NoError(t, err)
	return zapLogger
}

func TestNewGracefulServer(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080)
	assert.NotNil(t, gs)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, testLogger(t), 0)

	go func() {
		_ = e.Start(":0")
	}()
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, gs.Shutdown())
}

func TestShutdownManager_RunsInOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []int
	for i := 0; i < 3; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			order = append(order, index)
			return nil
		})
	}

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var ran []string
	sm.Register(func(ctx context.Context) error {
		ran = append(ran, "first")
		return fmt.Errorf("first failed")
	})
	sm.Register(func(ctx context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestShutdownManager_NoFunctions(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))
	assert.NoError(t, sm.Shutdown(context.Background()))
}
