package utfset

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomText returns a string of total random valid runes drawn from [lo..hi].
func randomText(faker *gofakeit.Faker, total int, lo, hi rune) string {
	var b strings.Builder

	for n := 0; n < total; {
		r := rune(faker.Number(int(lo), int(hi)))
		if utf8.ValidRune(r) {
			b.WriteRune(r)
			n++
		}
	}

	return b.String()
}

func distinct(str string) []rune {
	seen := map[rune]struct{}{}
	for _, r := range str {
		seen[r] = struct{}{}
	}

	res := make([]rune, 0, len(seen))
	for r := range seen {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })

	return res
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	const seed = 1234567890

	faker := gofakeit.New(seed)

	for _, tcase := range []*struct {
		Total  int
		Lo, Hi rune
	}{
		{10, 0, unicode.MaxASCII},
		{1000, 0, unicode.MaxASCII},
		{500, 0x80, 0x7FF},
		{500, 0x800, 0xFFFF},
		{500, 0x10000, unicode.MaxRune},
		{5000, 0, unicode.MaxRune},
	} {
		var (
			tcase = tcase
			text  = randomText(faker, tcase.Total, tcase.Lo, tcase.Hi)
			name  = fmt.Sprintf("%d[%#x..%#x]", tcase.Total, tcase.Lo, tcase.Hi)
		)

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := NewSet()

			require.NoError(t, s.AddAll([]byte(text)))

			exp := distinct(text)

			assert.Equal(t, exp, s.Runes())
			assert.Equal(t, len(exp), s.Len())

			for _, r := range exp {
				assert.True(t, s.Has(r), Format(r))
			}

			// a second pass changes nothing
			require.NoError(t, s.AddAll([]byte(text)))
			assert.Equal(t, exp, s.Runes())
		})
	}
}

func TestAscendingOrder(t *testing.T) {
	t.Parallel()

	const seed = 987654321

	var (
		faker = gofakeit.New(seed)
		s     = NewSet()
	)

	for i := 0; i < 20; i++ {
		require.NoError(t, s.AddAll([]byte(faker.Sentence(10))))
		require.NoError(t, s.AddAll([]byte(randomText(faker, 100, 0, unicode.MaxRune))))
	}

	prev := rune(-1)

	s.ForEach(func(r rune) {
		assert.Greater(t, r, prev)
		prev = r
	})
}
