package lineio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLineSplitsOnLF(t *testing.T) {
	r := NewReader(strings.NewReader("one\ntwo\n"))
	line, err := r.ReadLine(1024)
	require.NoError(t, err)
	require.Equal(t, "one", line)
	line, err = r.ReadLine(1024)
	require.NoError(t, err)
	require.Equal(t, "two", line)
	_, err = r.ReadLine(1024)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLineEmptyLine(t *testing.T) {
	r := NewReader(strings.NewReader("\nrest"))
	line, err := r.ReadLine(1024)
	require.NoError(t, err)
	require.Equal(t, "", line)
}

func TestReadLineUnterminatedTail(t *testing.T) {
	r := NewReader(strings.NewReader("no newline"))
	line, err := r.ReadLine(1024)
	require.NoError(t, err)
	require.Equal(t, "no newline", line)
	_, err = r.ReadLine(1024)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLineCeiling(t *testing.T) {
	r := NewReader(strings.NewReader("0123456789abc\n"))
	_, err := r.ReadLine(10)
	require.ErrorIs(t, err, ErrTooLong)

	r = NewReader(strings.NewReader("0123456789\n"))
	line, err := r.ReadLine(10)
	require.NoError(t, err)
	require.Equal(t, "0123456789", line)

	_, err = NewReader(strings.NewReader("x")).ReadLine(0)
	require.ErrorIs(t, err, ErrTooLong)
}

func TestReadLineGrowsPastChunk(t *testing.T) {
	long := strings.Repeat("z", 1000)
	r := NewReader(strings.NewReader(long + "\n"))
	line, err := r.ReadLine(2000)
	require.NoError(t, err)
	require.Equal(t, long, line)
}

func TestWriterRawAndFlushed(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink)
	require.NoError(t, w.WriteContent("no newline added"))
	// flushed immediately: visible without closing anything
	require.Equal(t, "no newline added", sink.String())
}
