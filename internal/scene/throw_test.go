package scene

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestHandleScenePanicRecover(t *testing.T) {
	testFn := func(shouldThrow, shouldWrap, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleScenePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldWrap {
			fatalWrapf(errBoom, "while %s", "walking")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with wrapped throw", func(t *testing.T) {
		err := testFn(false, true, false)
		assert.EqualError(t, err, "while walking: boom")
		assert.True(t, errors.Is(err, errBoom))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}
