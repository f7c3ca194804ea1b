package sinktest

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Philipp01105/kvlog/core"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	_, ok := r.Last()
	assert.False(t, ok)

	boom := errors.New("boom")
	require.NoError(t, r.Log(core.InfoLevel, `k="%s"`, "v"))
	require.NoError(t, r.Log(core.ErrorLevel, `exception="%s"`, "failed", boom))

	calls := r.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, `k="v"`, calls[0].Message())
	assert.NoError(t, calls[0].Err())
	assert.Equal(t, `exception="failed"`, calls[1].Message())
	assert.Equal(t, boom, calls[1].Err())

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, core.ErrorLevel, last.Level)

	r.Reset()
	assert.Zero(t, r.Len())
}

func TestRecorder_FailWith(t *testing.T) {
	r := NewRecorder()
	r.FailWith(errors.New("closed"))
	assert.EqualError(t, r.Log(core.InfoLevel, ""), "closed")
	assert.Equal(t, 1, r.Len())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Log(core.InfoLevel, `n="%s"`, "x")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, r.Len())
}

func TestFactory(t *testing.T) {
	f := NewFactory()
	require.NoError(t, f.Sink("a").Log(core.InfoLevel, "x"))
	require.NoError(t, f.Sink("a").Log(core.InfoLevel, "y"))

	assert.Equal(t, 2, f.Recorder("a").Len())
	assert.Zero(t, f.Recorder("b").Len())
}

func TestMockSink(t *testing.T) {
	m := &MockSink{}
	m.On("Log", core.InfoLevel, `k="%s"`, []any{"v"}).Return(nil).Once()
	m.On("Log", core.ErrorLevel, mock.Anything, mock.Anything).Return(errors.New("down"))

	assert.NoError(t, m.Log(core.InfoLevel, `k="%s"`, "v"))
	assert.EqualError(t, m.Log(core.ErrorLevel, ""), "down")
	m.AssertExpectations(t)
}
