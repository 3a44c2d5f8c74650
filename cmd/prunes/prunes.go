package main

import (
	"fmt"
	"io"

	"github.com/aglyzov/go-utfset/utfset"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func readInputs(args []string, stdin io.Reader) ([][]byte, error) {
	if len(args) > 0 {
		inputs := make([][]byte, len(args))
		for i, arg := range args {
			inputs[i] = []byte(arg)
		}
		return inputs, nil
	}
	log.Debug("reading stdin")
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return [][]byte{b}, nil
}

// prunes prints the runes of s in ascending order and returns how many it printed.
func prunes(w io.Writer, s []byte, cfg Config) (int, error) {
	set := utfset.NewSet()
	set.SetNodeLimit(cfg.NodeLimit)

	if err := set.AddAll(s); err != nil {
		return 0, err
	}
	log.Debugf("%d bytes, %d runes, %d nodes", len(s), set.Len(), set.Nodes())

	var (
		size int
		err  error
	)
	set.Iter(func(r rune) bool {
		if _, err = fmt.Fprintf(w, cfg.Format+"\n", uint32(r)); err != nil {
			return false
		}
		size++
		return true
	})
	return size, errors.Wrap(err, "failed to write")
}

// prunesAll runs prunes over every input and stops at the first failure.
func prunesAll(w io.Writer, inputs [][]byte, cfg Config) error {
	var size int
	for i, s := range inputs {
		n, err := prunes(w, s, cfg)
		if err != nil {
			return errors.Wrapf(err, "input %d", i+1)
		}
		size += n
	}
	log.Infof("%d inputs, %d runes", len(inputs), size)
	return nil
}
