package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
)

type recordingSink struct {
	frames  int
	closed  bool
	pubErr  error
	closeOK error
}

func (s *recordingSink) Publish(context.Context, coretelemetry.Frame) error {
	s.frames++
	return s.pubErr
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeOK
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	m := NewMultiSink(a, b)
	assert.NoError(t, m.Publish(context.Background(), testFrame()))
	assert.Equal(t, 1, a.frames)
	assert.Equal(t, 1, b.frames)
}

func TestMultiSinkDeliversDespiteErrors(t *testing.T) {
	boom := errors.New("boom")
	a, b := &recordingSink{pubErr: boom}, &recordingSink{}
	m := NewMultiSink(a, b)
	err := m.Publish(context.Background(), testFrame())
	assert.ErrorIs(t, err, boom)
	// the failing sink must not stop delivery to the healthy one
	assert.Equal(t, 1, b.frames)
}

func TestMultiSinkClosesAll(t *testing.T) {
	a, b := &recordingSink{closeOK: errors.New("close failed")}, &recordingSink{}
	m := NewMultiSink(a, b)
	assert.Error(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
