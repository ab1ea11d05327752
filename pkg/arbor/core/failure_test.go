package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFailure(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	e3 := errors.New("third")

	var f *Failure
	f = AddFailure(f, nil)
	assert.Nil(t, f)

	f = AddFailure(f, e1)
	f = AddFailure(f, nil)
	f = AddFailure(f, e2)
	f = AddFailure(f, e3)

	require.NotNil(t, f)
	assert.Equal(t, e1, f.Primary)
	assert.Equal(t, []error{e2, e3}, f.Secondary)
	assert.Equal(t, "first (suppressed: second; third)", f.Error())
}

func TestFailureUnwrap(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	f := NewFailure(e1)

	assert.Equal(t, "first", f.Error())
	assert.ErrorIs(t, f, e1)
	assert.NotErrorIs(t, f, e2)

	f.Suppress(e2)
	assert.ErrorIs(t, f, e2)
}

func TestNewResult(t *testing.T) {
	ok := NewResult(nil, time.Second)
	assert.True(t, ok.Succeeded())
	assert.Nil(t, ok.Failure)
	assert.Equal(t, time.Second, ok.Duration)
	assert.Equal(t, "succeeded", ok.Status.String())

	bad := NewResult(NewFailure(errors.New("x")), 0)
	assert.False(t, bad.Succeeded())
	assert.Equal(t, "failed", bad.Status.String())
}

type countingListener struct {
	started, finished, skipped int
}

func (c *countingListener) Started(Node)          { c.started++ }
func (c *countingListener) Finished(Node, Result) { c.finished++ }
func (c *countingListener) Skipped(Node, string)  { c.skipped++ }

func TestListenersFanOut(t *testing.T) {
	a, b := &countingListener{}, &countingListener{}
	ls := Listeners{a, NopListener{}, b}
	node := NewSuite("s", nil)

	ls.Started(node)
	ls.Finished(node, NewResult(nil, 0))
	ls.Skipped(node, "why")

	for _, c := range []*countingListener{a, b} {
		assert.Equal(t, 1, c.started)
		assert.Equal(t, 1, c.finished)
		assert.Equal(t, 1, c.skipped)
	}
}
