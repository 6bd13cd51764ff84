package numsys

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, []rune("0123456789"), Digits())
	assert.Equal(t, []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), UpperAZ())
	assert.Equal(t, []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"), DigitsUpperAZ())
	assert.Len(t, DigitsUpperAZ(), MaxBase)

	d := DigitsUpperAZ()
	d[0] = 'x'
	assert.Equal(t, '0', DigitsUpperAZ()[0])
}

func TestSwitchDecBase(t *testing.T) {
	tests := []struct {
		decimal  uint64
		base     int
		expected string
	}{
		{10, 16, "A"},
		{10, 2, "1010"},
		{10, 10, "10"},
		{10, 3, "101"},
		{255, 16, "FF"},
		{8, 8, "10"},
		{35, 36, "Z"},
		{1295, 36, "ZZ"},
		{math.MaxUint64, 16, "FFFFFFFFFFFFFFFF"},
		{math.MaxUint64, 36, "3W5E11264SGSF"},
	}

	for idx, spec := range tests {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			s, err := SwitchDecBase(spec.decimal, spec.base)
			require.NoError(t, err)
			assert.Equal(t, spec.expected, s)
		})
	}
}

func TestSwitchDecBaseZero(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		s, err := SwitchDecBase(0, base)
		require.NoError(t, err)
		assert.Equal(t, "0", s, "base %d", base)
	}
}

func TestSwitchDecBaseErrors(t *testing.T) {
	tests := []struct {
		base    int
		kind    Kind
		limit   int
		message string
	}{
		{1, BaseTooSmall, 2, "base must be 2 or higher, given 1"},
		{0, BaseTooSmall, 2, "base must be 2 or higher, given 0"},
		{-5, BaseTooSmall, 2, "base must be 2 or higher, given -5"},
		{37, BaseTooBig, 36, "base must be at most 36, given 37"},
		{1000, BaseTooBig, 36, "base must be at most 36, given 1000"},
	}

	for idx, spec := range tests {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			_, err := SwitchDecBase(10, spec.base)
			require.ErrorIs(t, err, spec.kind)
			assert.EqualError(t, err, spec.message)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, spec.base, e.Given)
			assert.Equal(t, spec.limit, e.Limit)

			_, err = ParseDecBase("10", spec.base)
			require.ErrorIs(t, err, spec.kind)
		})
	}
}

// The strconv bases must render exactly what the canonical alphabet would.
func TestSwitchDecBaseFastPath(t *testing.T) {
	values := []uint64{1, 7, 8, 9, 10, 15, 16, 255, 4096, 1<<63 + 12345, math.MaxUint64}
	for _, base := range []int{2, 8, 10, 16} {
		for _, d := range values {
			s, err := SwitchDecBase(d, base)
			require.NoError(t, err)
			want, err := Dec2Seq(d, DigitsUpperAZ()[:base])
			require.NoError(t, err)
			assert.Equal(t, want, s, "base %d value %d", base, d)
		}
	}
}

func TestSwitchDecBaseAllBases(t *testing.T) {
	values := []uint64{1, 2, 35, 36, 37, 1000, 123456789, math.MaxUint64}
	for base := MinBase; base <= MaxBase; base++ {
		for _, d := range values {
			s, err := SwitchDecBase(d, base)
			require.NoError(t, err)
			assert.NotEqual(t, byte('0'), s[0], "leading zero in %q", s)

			// strconv agrees apart from letter case.
			assert.Equal(t, strconv.FormatUint(d, base), strings.ToLower(s))

			v, err := ParseDecBase(s, base)
			require.NoError(t, err)
			assert.Equal(t, d, v)
		}
	}
}

func TestParseDecBase(t *testing.T) {
	v, err := ParseDecBase("A", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), v)

	v, err = ParseDecBase("", 10)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = ParseDecBase("a", 16)
	require.ErrorIs(t, err, MissingChar)

	_, err = ParseDecBase("2", 2)
	assert.EqualError(t, err, "symbol '2' not found in: ['0' '1']")

	_, err = ParseDecBase("3W5E11264SGSG", 36)
	require.ErrorIs(t, err, Overflow)
}

// Race-free first access to the canonical alphabet comes from
// sync.OnceValue; earlier tests have usually built it already, so this
// checks that conversions share it and a single Alphabet safely.
func TestConcurrentUse(t *testing.T) {
	al, err := NewAlphabetString("★☆")
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			d := uint64(i) * 7919
			base := MinBase + i%(MaxBase-MinBase+1)
			s, err := SwitchDecBase(d, base)
			if err != nil {
				return err
			}
			v, err := ParseDecBase(s, base)
			if err != nil {
				return err
			}
			if v != d {
				return fmt.Errorf("base %d: %d became %q became %d", base, d, s, v)
			}

			s, err = al.Format(d)
			if err != nil {
				return err
			}
			v, err = al.Parse(s)
			if err != nil {
				return err
			}
			if v != d {
				return fmt.Errorf("alphabet: %d became %q became %d", d, s, v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
