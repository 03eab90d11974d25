//go:build !linux

package term

import "errors"

func openKeyDevice(path string) (KeySource, error) {
	return nil, errors.New("event device input is only supported on linux")
}
