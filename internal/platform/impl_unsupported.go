//go:build !linux && !windows && !darwin

package platform

import "runtime"

func newPlatform() (Platform, error) {
	return nil, &UnsupportedPlatformError{OS: runtime.GOOS}
}
