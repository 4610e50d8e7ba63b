package protocol

import (
	"bufio"
	"encoding/json"
	"io"
)

// DefaultMaxMessageSize bounds a single frame. Payload size is decoupled
// from any read-buffer size: a frame larger than the cap is a protocol
// error, not a truncation.
const DefaultMaxMessageSize = 64 * 1024

// NewScanner returns a newline-frame scanner over r with the given size cap.
// A frame exceeding the cap makes the scanner fail with bufio.ErrTooLong.
func NewScanner(r io.Reader, maxMessageSize int) *bufio.Scanner {
	if maxMessageSize <= 0 {
		maxMessageSize = DefaultMaxMessageSize
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxMessageSize)
	return sc
}

// Write marshals v and sends it as one newline-terminated frame in a single
// write call.
func Write(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
