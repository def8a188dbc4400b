//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package display

import "errors"

// Monitors is not implemented on this platform.
func Monitors() ([]MonitorInfo, error) {
	return nil, errors.New("monitor enumeration is not supported on this platform")
}
