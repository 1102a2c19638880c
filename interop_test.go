package decimal64

import (
	"testing"

	shopspring "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToShopspring(t *testing.T) {
	d := MustParse[P2, HalfEven]("19.99")
	want, err := shopspring.NewFromString("19.99")
	require.NoError(t, err)
	got := ToShopspring(d)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestFromShopspring(t *testing.T) {
	s, err := shopspring.NewFromString("19.99")
	require.NoError(t, err)
	got, err := FromShopspring[P2, HalfEven](s)
	require.NoError(t, err)
	assert.Equal(t, "19.99", got.String())
}

func TestFromShopspring_RoundsToDestinationPrecision(t *testing.T) {
	s, err := shopspring.NewFromString("1.23456")
	require.NoError(t, err)
	got, err := FromShopspring[P2, HalfEven](s)
	require.NoError(t, err)
	assert.Equal(t, "1.23", got.String())
}

// TestFromShopspring_AppliesDestinationPolicy pins a tie case (1.235 at two
// fractional digits) where truncation and rounding disagree: truncating
// toward zero gives "1.23", but HalfUp (away from zero on exact ties) gives
// "1.24". This distinguishes FromShopspring's R.DivRounded-based narrowing
// from shopspring's own Rescale, which truncates.
func TestFromShopspring_AppliesDestinationPolicy(t *testing.T) {
	s, err := shopspring.NewFromString("1.235")
	require.NoError(t, err)

	up, err := FromShopspring[P2, HalfUp](s)
	require.NoError(t, err)
	assert.Equal(t, "1.24", up.String())

	down, err := FromShopspring[P2, Down](s)
	require.NoError(t, err)
	assert.Equal(t, "1.23", down.String())
}

// TestFromShopspring_NegativeNarrowing exercises QuoRem's T-division
// semantics (remainder carries the dividend's sign) through DivRounded on a
// negative coefficient.
func TestFromShopspring_NegativeNarrowing(t *testing.T) {
	s, err := shopspring.NewFromString("-1.235")
	require.NoError(t, err)

	up, err := FromShopspring[P2, HalfUp](s)
	require.NoError(t, err)
	assert.Equal(t, "-1.24", up.String())
}

func TestMustFromShopspring_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustFromShopspring did not panic on overflow")
		}
	}()
	huge, _ := shopspring.NewFromString("99999999999999999999999999999999")
	MustFromShopspring[P0, HalfEven](huge)
}
