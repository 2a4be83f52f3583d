// internal/writers/brokenpipe.go
package writers

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush flushes bw; a consumer that went away is not an error.
func Flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
