package codepage

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestCodePageLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.codepage")
	defer teardown()
	//
	assert.Len(t, reverse, 256, "glyphs must be distinct")
	assert.Equal(t, '∞', Glyph(0))
	assert.Equal(t, '\n', Glyph(10))
	assert.Equal(t, 'ÿ', Glyph(255))
	for c := 0x20; c < 0x7f; c++ {
		assert.Equal(t, rune(c), Glyph(byte(c)), "printable ASCII maps to itself")
	}
	code, ok := Code('√')
	assert.True(t, ok)
	assert.Equal(t, byte(0x1f), code)
	_, ok = Code('☃')
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.codepage")
	defer teardown()
	//
	text := "5f[>p]∞\n"
	data, err := Encode(text)
	require.NoError(t, err)
	assert.Equal(t, []byte{'5', 'f', '[', '>', 'p', ']', 0, '\n'}, data)
	assert.Equal(t, text, Decode(data))
	//
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	back, err := Encode(Decode(all))
	require.NoError(t, err)
	assert.Equal(t, all, back)
}

func TestUnmappable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.codepage")
	defer teardown()
	//
	_, err := Encode("p☃")
	assert.True(t, errors.Is(err, ErrUnmappable))
}

func TestStreamingDecoder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.codepage")
	defer teardown()
	//
	data := bytes.Repeat([]byte{0, 'x'}, 5000) // output exceeds internal buffers
	r := transform.NewReader(bytes.NewReader(data), Encoding.NewDecoder())
	text, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, Decode(data), string(text))
}
