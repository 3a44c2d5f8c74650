package utfset_test

import (
	"fmt"

	"github.com/aglyzov/go-utfset/utfset"
)

func ExampleSet_Add() {
	var (
		set = utfset.NewSet()
		s   = []byte("aé€𝔈aé")
		err error
	)

	for len(s) > 0 {
		if s, err = set.Add(s); err != nil {
			fmt.Println(err)
			return
		}
	}

	set.ForEach(func(r rune) {
		fmt.Println(utfset.Format(r))
	})
	// Output:
	// U+0061
	// U+00E9
	// U+20AC
	// U+1D508
}

func ExampleSet_Add_malformed() {
	set := utfset.NewSet()

	_, err := set.Add([]byte{0x82, 0xAC})

	fmt.Println(err)
	fmt.Println(set.Len())
	// Output:
	// continuation byte 0x82 at rune start: utfset: malformed input
	// 0
}

func ExampleSet_Has() {
	set := utfset.NewSet('x', 'y', 'z')

	fmt.Println(set.Has('y'), set.Has('w'))
	// Output: true false
}
