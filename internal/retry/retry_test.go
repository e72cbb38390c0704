package retry

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-linkmem/linkmem"
)

type fakeBinder struct {
	errs  []error
	calls int
}

func (f *fakeBinder) Bind() (err error) {
	if f.calls < len(f.errs) {
		err = f.errs[f.calls]
	}

	f.calls++
	return
}

var errNotFound = &linkmem.BindError{Name: "MumbleLink", Reason: linkmem.NotFound, Err: os.ErrNotExist}

func TestBindRetriesMissingSegment(t *testing.T) {
	b := &fakeBinder{errs: []error{errNotFound, errNotFound}}

	var notified int
	err := Bind(context.Background(), b, time.Millisecond, func(error, time.Duration) {
		notified++
	})

	require.NoError(t, err)
	assert.Equal(t, 3, b.calls)
	assert.Equal(t, 2, notified)
}

func TestBindStopsOnPermanentError(t *testing.T) {
	mapErr := &linkmem.MapError{Name: "MumbleLink", Err: linkmem.ErrSegmentTooSmall}
	b := &fakeBinder{errs: []error{mapErr}}

	err := Bind(context.Background(), b, time.Millisecond, nil)

	assert.ErrorIs(t, err, linkmem.ErrSegmentTooSmall)
	assert.Equal(t, 1, b.calls)
}

func TestBindStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &fakeBinder{errs: []error{errNotFound, errNotFound, errNotFound}}
	err := Bind(ctx, b, time.Millisecond, nil)

	assert.Error(t, err)
	assert.LessOrEqual(t, b.calls, 1)
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(errNotFound))
	assert.False(t, Retryable(&linkmem.BindError{Reason: linkmem.PermissionDenied}))
	assert.False(t, Retryable(errors.New("boom")))
}
