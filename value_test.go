package simplex

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	a, b := FromInt(7), FromInt(2)
	assert.Equal(t, "9", a.Plus(b).String())
	assert.Equal(t, "5", a.Minus(b).String())
	assert.Equal(t, "14", a.Times(b).String())
	assert.Equal(t, "3.5", a.Over(b).String())
	assert.Equal(t, "1", a.Mod(b).String())
	assert.Equal(t, "-1", a.Neg().Mod(b).String())
	assert.Equal(t, "-7", a.Neg().String())
}

func TestValuePrecision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	third := One.Over(FromInt(3))
	s := third.String()
	require.True(t, strings.HasPrefix(s, "0."))
	assert.Equal(t, Precision, len(s)-2, "1/3 carries %d significant digits", Precision)
	assert.Equal(t, "0.333333333333333", third.Round(15).String())
	//
	twoThirds := FromInt(2).Over(FromInt(3))
	assert.True(t, strings.HasSuffix(twoThirds.String(), "67"), "last digit is rounded")
	//
	big := MustParse("12345678901234567890")
	assert.True(t, big.Times(big).Over(big).Equal(big))
}

func TestValueNonFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	inf, ninf, nan := Infinity(1), Infinity(-1), NotANumber()
	assert.True(t, One.Over(Zero).IsInf(1))
	assert.True(t, One.Neg().Over(Zero).IsInf(-1))
	assert.True(t, Zero.Over(Zero).IsNaN())
	assert.True(t, inf.Minus(inf).IsNaN())
	assert.True(t, inf.Times(Zero).IsNaN())
	assert.True(t, One.Over(inf).IsZero())
	assert.True(t, inf.Plus(One).IsInf(1))
	assert.True(t, ninf.Times(ninf).IsInf(1))
	assert.True(t, nan.Plus(One).IsNaN())
	assert.True(t, One.Mod(Zero).IsNaN())
	assert.Equal(t, "Infinity", inf.String())
	assert.Equal(t, "-Infinity", ninf.String())
	assert.Equal(t, "NaN", nan.String())
	assert.False(t, nan.Equal(nan))
	assert.True(t, inf.Equal(Infinity(1)))
}

func TestValueTruthiness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	assert.False(t, Zero.Truthy())
	assert.False(t, MustParse("0.000").Truthy())
	assert.True(t, MustParse("0.001").Truthy())
	assert.True(t, NotANumber().Truthy())
	assert.True(t, Infinity(-1).Truthy())
	assert.False(t, NotANumber().IsPositive())
	assert.True(t, Infinity(1).IsPositive())
}

func TestValueFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	for input, output := range map[string]string{
		"0":                      "0",
		"42":                     "42",
		"-3.50":                  "-3.5",
		"0.000001":               "0.000001",
		"0.0000001":              "1e-7",
		"-0.00000012":            "-1.2e-7",
		"100000000000000000000":  "100000000000000000000",
		"1000000000000000000000": "1e+21",
		"1234500000000000000000": "1.2345e+21",
	} {
		assert.Equal(t, output, MustParse(input).String(), "formatting %s", input)
	}
}

func TestValueConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex")
	defer teardown()
	//
	i, err := MustParse("-3.9").Int()
	require.NoError(t, err)
	assert.Equal(t, -3, i)
	_, err = Infinity(1).Int()
	assert.Error(t, err)
	_, err = MustParse("1e20").Int()
	assert.Error(t, err)
	r, ok := FromInt(65).Rune()
	assert.True(t, ok)
	assert.Equal(t, 'A', r)
	_, ok = FromInt(-1).Rune()
	assert.False(t, ok)
	_, err = ParseValue("abc")
	assert.Error(t, err)
}
