package codepage

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// glyphs lists the characters of the code page, 16 per row.
var glyphs = [16]string{
	"∞←↑→↓↔↕∆∏∑\n∫≈\r≤≥",
	"♠♣♥♦₀₁₂₃₄₅₆₇₈₉Ω√",
	" !\"#$%&'()*+,-./",
	"0123456789:;<=>?",
	"@ABCDEFGHIJKLMNO",
	"PQRSTUVWXYZ[\\]^_",
	"`abcdefghijklmno",
	"pqrstuvwxyz{|}~ȷ",
	"€Ṣṣƒ„…†‡ɍ‰Š‹ŒɻŽʘ",
	"Ḷ‘’“”•–≠₣™š›œṆžŸ",
	"ḷ¡¢£¤¥¦§¨©ª«¬ṇ®ʚ",
	"°±²³´µ¶·ə¹º»¼½¾¿",
	"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏ",
	"ÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞß",
	"àáâãäåæçèéêëìíîï",
	"ðñòóôõö÷øùúûüýþÿ",
}

var (
	table   [256]rune
	reverse map[rune]byte
)

func init() {
	reverse = make(map[rune]byte, 256)
	code := 0
	for _, row := range glyphs {
		for _, r := range row {
			table[code] = r
			reverse[r] = byte(code)
			code++
		}
	}
}

// ErrUnmappable is returned when encoding a character which is not part of
// the code page.
var ErrUnmappable = errors.New("character not in code page")

// Encoding is the Simplex code page, mapping each byte to one glyph.
var Encoding encoding.Encoding = simplexEncoding{}

type simplexEncoding struct{}

func (simplexEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: decoder{}}
}

func (simplexEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoder{}}
}

func (simplexEncoding) String() string {
	return "Simplex code page"
}

// Glyph returns the character for a byte code.
func Glyph(code byte) rune {
	return table[code]
}

// Code returns the byte code for a character, if it is part of the code page.
func Code(r rune) (byte, bool) {
	c, ok := reverse[r]
	return c, ok
}

// Decode converts code page bytes to UTF-8 text.
func Decode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(table[c])
	}
	return b.String()
}

// Encode converts UTF-8 text to code page bytes.
func Encode(text string) ([]byte, error) {
	out, _, err := transform.Bytes(Encoding.NewEncoder(), []byte(text))
	return out, err
}

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		r := table[c]
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size < 2 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
		}
		c, ok := reverse[r]
		if !ok {
			tracer().P("char", fmt.Sprintf("%U", r)).Errorf("cannot encode character")
			return nDst, nSrc, fmt.Errorf("%w: %q", ErrUnmappable, r)
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
