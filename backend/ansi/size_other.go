//go:build !unix

package ansi

import "errors"

var errWinSizeUnsupported = errors.New("ansi: window size query unsupported on this platform")

func getWinSize(fd int) (width, height int, err error) {
	return 0, 0, errWinSizeUnsupported
}

// watchResize has no signal source on this platform; resizes are only
// observed through explicit Size queries
func (b *Backend) watchResize() {}
