package dynstr

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/dynstr/pkg/lineio"
)

func TestSetFromInput(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("first line\nsecond line\n"))
	s := New()
	require.NoError(t, s.SetFromInput(src))
	require.Equal(t, "first line", s.String())
}

func TestSetFromInputRefusesOverwrite(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("line\n"))
	s := mustStr(t, "already here")
	require.ErrorIs(t, s.SetFromInput(src), ErrStateConflict)
	require.Equal(t, "already here", s.String())

	// present-but-empty content also blocks the set
	e := mustStr(t, "")
	require.ErrorIs(t, e.SetFromInput(src), ErrStateConflict)
}

func TestSetFromInputExhaustedSource(t *testing.T) {
	src := lineio.NewReader(strings.NewReader(""))
	s := New()
	require.ErrorIs(t, s.SetFromInput(src), io.EOF)
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Bytes())
}

func TestSetFromInputNilSource(t *testing.T) {
	require.ErrorIs(t, New().SetFromInput(nil), ErrInvalidArgument)
}

func TestAppendFromInput(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("world\n"))
	s := mustStr(t, "hello ")
	require.NoError(t, s.AppendFromInput(src))
	require.Equal(t, "hello world", s.String())
}

func TestAppendFromInputInitializesEmpty(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("fresh\n"))
	s := New()
	require.NoError(t, s.AppendFromInput(src))
	require.Equal(t, "fresh", s.String())
}

func TestAppendFromInputReadsOneLinePerCall(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("a\nb\nc"))
	s := New()
	require.NoError(t, s.AppendFromInput(src))
	require.NoError(t, s.AppendFromInput(src))
	require.NoError(t, s.AppendFromInput(src)) // final unterminated line
	require.Equal(t, "abc", s.String())
	require.ErrorIs(t, s.AppendFromInput(src), io.EOF)
	require.Equal(t, "abc", s.String())
}

func TestMapReadErrTaxonomy(t *testing.T) {
	// size-ceiling breaches from the collaborator surface as allocation
	// failures, wrapped or not; an exhausted source passes through as EOF
	require.ErrorIs(t, mapReadErr(lineio.ErrTooLong), ErrAllocation)
	require.ErrorIs(t, mapReadErr(fmt.Errorf("read line: %w", lineio.ErrTooLong)), ErrAllocation)
	require.ErrorIs(t, mapReadErr(io.EOF), io.EOF)

	other := errors.New("stream torn down")
	require.ErrorIs(t, mapReadErr(other), other)
}

func TestInputOnFreedInstance(t *testing.T) {
	src := lineio.NewReader(strings.NewReader("x\n"))
	s := New()
	s.Free()
	require.ErrorIs(t, s.SetFromInput(src), ErrInvalidArgument)
	require.ErrorIs(t, s.AppendFromInput(src), ErrInvalidArgument)
}
