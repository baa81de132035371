package scene

import "github.com/pkg/errors"

// The SVG walker is recursive and most attributes can be malformed, so rather
// than returning an error from every helper we panic, and Load recovers.

type SceneError error

// Panic with a SceneError.
func fatalf(format string, args ...interface{}) {
	panic(SceneError(errors.Errorf(format, args...)))
}

// Panic with a SceneError wrapping err, so that callers can still match it
// with errors.Is.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(SceneError(errors.Wrapf(err, format, args...)))
}

func HandleScenePanicRecover(r interface{}) error {
	if r != nil {
		if sceneError, ok := r.(SceneError); ok {
			return sceneError
		}
		panic(r)
	}
	return nil
}
