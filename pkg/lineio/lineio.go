// Package lineio provides the line-oriented input and output collaborators
// for dynstr. A Reader consumes one line at a time, byte by byte, under a
// caller-supplied size ceiling; a Writer emits raw content and flushes
// immediately so output is never held back by buffering.
package lineio

import (
	"bufio"
	"errors"
	"io"

	"github.com/rawbytedev/dynstr/internal/common"
)

var ErrTooLong = errors.New("input exceeds size ceiling")

// Reader reads lines from an underlying stream. It owns its buffering, so a
// single Reader must be reused across calls; wrapping the same stream twice
// loses bytes.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine consumes bytes until a line feed or end of stream and returns the
// line without the terminator. It returns ErrTooLong once the accumulated
// line would exceed max, and io.EOF only when the stream ends before any
// byte was read; a final unterminated line is returned as-is.
func (r *Reader) ReadLine(max int) (string, error) {
	if max <= 0 {
		return "", ErrTooLong
	}
	buf := make([]byte, 0, common.ChunkSize)
	for {
		c, err := r.br.ReadByte()
		if err == io.EOF {
			if len(buf) == 0 {
				return "", io.EOF
			}
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
		if c == '\n' {
			return string(buf), nil
		}
		if len(buf)+1 > max {
			return "", ErrTooLong
		}
		buf = append(buf, c)
	}
}

// Writer emits raw content to an underlying sink.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteContent writes s with no added formatting or newline and flushes.
func (w *Writer) WriteContent(s string) error {
	if _, err := w.bw.WriteString(s); err != nil {
		return err
	}
	return w.bw.Flush()
}
