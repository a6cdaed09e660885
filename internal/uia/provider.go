package uia

import (
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when no accessibility provider is registered for
// the current platform.
var ErrUnsupported = fmt.Errorf("no accessibility provider available on %s/%s; the host application runs on windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by a platform binding via init(). The engine itself
// never implements tree walking or input injection — it consumes them.
var NewProviderFunc func() (Provider, error)

// NewProvider returns the registered accessibility provider.
func NewProvider() (Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
