package vdp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamBufferCommands(t *testing.T) {
	tables := []struct {
		name     string
		command  func(*Stream) error
		expected []byte
	}{
		{
			"clear",
			func(s *Stream) error { return s.ClearBuffer(5000) },
			[]byte{23, 0, 0xa0, 0x88, 0x13, 2},
		},
		{
			"write",
			func(s *Stream) error { return s.WriteBlock(5000, []byte{0xde, 0xad, 0xbe, 0xef}) },
			[]byte{23, 0, 0xa0, 0x88, 0x13, 0, 4, 0, 0xde, 0xad, 0xbe, 0xef},
		},
		{
			"split",
			func(s *Stream) error { return s.SplitByWidth(5000, 16, 8, 0) },
			[]byte{23, 0, 0xa0, 0x88, 0x13, 0x14, 16, 0, 8, 0, 0, 0},
		},
		{
			"select",
			func(s *Stream) error { return s.SelectBitmap(260) },
			[]byte{23, 27, 0x20, 4, 1},
		},
		{
			"convert",
			func(s *Stream) error { return s.BitmapFromBuffer(16, 16, 1) },
			[]byte{23, 27, 0x21, 16, 0, 16, 0, 1},
		},
		{
			"plot",
			func(s *Stream) error { return s.PlotBitmap(150, 10) },
			[]byte{23, 27, 3, 150, 0, 10, 0},
		},
	}

	for _, table := range tables {
		b := new(bytes.Buffer)
		require.NoError(t, table.command(NewStream(b)), table.name)
		assert.Equal(t, table.expected, b.Bytes(), table.name)
	}
}

func TestStreamConsoleCommands(t *testing.T) {
	tables := []struct {
		name     string
		command  func(*Stream) error
		expected []byte
	}{
		{"mode", func(s *Stream) error { return s.Mode(8) }, []byte{22, 8}},
		{"cls", func(s *Stream) error { return s.ClearScreen() }, []byte{12}},
		{"cursor off", func(s *Stream) error { return s.CursorEnable(false) }, []byte{23, 1, 0}},
		{"cursor on", func(s *Stream) error { return s.CursorEnable(true) }, []byte{23, 1, 1}},
		{"tab", func(s *Stream) error { return s.CursorTab(0, 27) }, []byte{31, 0, 27}},
		{"fg", func(s *Stream) error { return s.TextColour(White) }, []byte{17, 7}},
		{"bg", func(s *Stream) error { return s.TextBgColour(Blue) }, []byte{17, 132}},
		{"pixels", func(s *Stream) error { return s.PixelCoordinates() }, []byte{23, 0, 0xc0, 0}},
		{"print", func(s *Stream) error { return s.Print("Hi") }, []byte{'H', 'i'}},
	}

	for _, table := range tables {
		b := new(bytes.Buffer)
		require.NoError(t, table.command(NewStream(b)), table.name)
		assert.Equal(t, table.expected, b.Bytes(), table.name)
	}
}

func TestStreamBufferIDRange(t *testing.T) {
	s := NewStream(new(bytes.Buffer))

	assert.Error(t, s.ClearBuffer(-1))
	assert.Error(t, s.WriteBlock(0x10000, nil))
	assert.Error(t, s.SplitByWidth(0, 16, 8, 0x10000))
	assert.Error(t, s.SelectBitmap(-1))
}

// failWriter errors after n successful writes.
type failWriter struct {
	n int
}

func (w *failWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, assert.AnError
	}
	w.n--
	return len(b), nil
}

func TestStreamWriteFailure(t *testing.T) {
	s := NewStream(&failWriter{})

	assert.ErrorIs(t, s.ClearBuffer(0), assert.AnError)
	assert.ErrorIs(t, s.WriteBlock(0, []byte{1}), assert.AnError)
	assert.ErrorIs(t, s.PlotBitmap(0, 0), assert.AnError)
}
