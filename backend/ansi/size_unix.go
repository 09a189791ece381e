//go:build unix

package ansi

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// getWinSize queries the kernel for the tty dimensions
func getWinSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// watchResize delivers SIGWINCH-driven size changes to the handler
func (b *Backend) watchResize() {
	b.sigC = make(chan os.Signal, 1)
	signal.Notify(b.sigC, syscall.SIGWINCH)
	stop := b.stopResize
	go func() {
		for {
			select {
			case <-stop:
				signal.Stop(b.sigC)
				return
			case <-b.sigC:
				w, h, err := getWinSize(int(b.file.Fd()))
				if err == nil && b.resizeFn != nil {
					b.resizeFn(w, h)
				}
			}
		}
	}()
}
