package utfset

import (
	"strings"
	"unicode/utf8"

	"github.com/hideo55/go-popcount"
	"github.com/pkg/errors"
)

const (
	fanout  = 64
	lowMask = fanout - 1 // the x bits of 10xxxxxx / 11xxxxxx

	asciiMax = 0x7F
	contMax  = 0xBF

	// maxSeqLen is the longest sequence a leading byte can announce (0xFF)
	maxSeqLen = 8
)

var (
	// ErrMalformed is returned when the input does not start with a rune.
	ErrMalformed = errors.New("utfset: malformed input")
	// ErrOutOfMemory is returned when an insertion would exceed the node limit.
	ErrOutOfMemory = errors.New("utfset: out of memory")
)

// leadingOnes maps the x bits of a leading byte 11xxxxxx to the number of
// leading ones in them. There are n+1 continuation bytes to follow.
var leadingOnes = [fanout]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 00xxxx
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 01xxxx
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 10xxxx
	2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 5, 6, // 11xxxx
}

// Ref holds either a leaf bitmask or a Node pointer
type Ref struct {
	bits uint64
	node *Node
}

type Node struct {
	child [fanout]Ref
}

// Set is a set of runes. The zero value is an empty set.
type Set struct {
	root  Node
	nodes int
	limit int
}

// InitSet resets the set and adds the given runes. Invalid runes are skipped.
func InitSet(set *Set, runes ...rune) *Set {
	*set = Set{}
	for _, r := range runes {
		if !utf8.ValidRune(r) {
			continue
		}
		_ = set.AddRune(r)
	}
	return set
}

func NewSet(runes ...rune) *Set {
	return InitSet(&Set{}, runes...)
}

// SetNodeLimit caps the number of nodes the set may allocate. Zero removes the cap.
func (t *Set) SetNodeLimit(limit int) {
	t.limit = limit
}

// Nodes returns the number of allocated nodes.
func (t *Set) Nodes() int {
	return t.nodes
}

// Add inserts the rune encoded at the start of s and returns the rest of s.
//
// The encoding is trusted: continuation bytes are not checked and overlong
// sequences are stored as they come. On ErrOutOfMemory the nodes allocated so far
// are kept.
func (t *Set) Add(s []byte) ([]byte, error) {
	leaf, bit, rest, err := t.walk(s, true)
	if err != nil {
		return s, err
	}
	*leaf |= 1 << bit
	return rest, nil
}

// AddString is Add for a string.
func (t *Set) AddString(s string) (string, error) {
	head := s
	if len(head) > maxSeqLen {
		head = head[:maxSeqLen]
	}
	rest, err := t.Add([]byte(head))
	if err != nil {
		return s, err
	}
	return s[len(head)-len(rest):], nil
}

// AddRune inserts a single rune.
func (t *Set) AddRune(r rune) error {
	if !utf8.ValidRune(r) {
		return errors.Wrapf(ErrMalformed, "invalid rune %#x", r)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err := t.Add(buf[:n])
	return err
}

// AddAll inserts every rune of s and stops at the first failure.
func (t *Set) AddAll(s []byte) error {
	for len(s) > 0 {
		rest, err := t.Add(s)
		if err != nil {
			return err
		}
		s = rest
	}
	return nil
}

// Has reports whether r is a member of the set.
func (t *Set) Has(r rune) bool {
	if !utf8.ValidRune(r) {
		return false
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	leaf, bit, _, err := t.walk(buf[:n], false)
	if err != nil || leaf == nil {
		return false
	}
	return (*leaf>>bit)&1 != 0
}

// walk follows the path of the rune encoded at the start of s and returns the
// leaf bitmask with the bit index of that rune. Missing nodes are allocated when
// grow is set; otherwise a missing node yields a nil leaf.
func (t *Set) walk(s []byte, grow bool) (*uint64, uint, []byte, error) {
	if len(s) == 0 {
		return nil, 0, s, errors.Wrap(ErrMalformed, "empty input")
	}

	var (
		c   = s[0]
		idx byte
		n   uint8
	)

	switch {
	case c > contMax:
		// leading byte 11xxxxxx
		idx = c & lowMask
		n = leadingOnes[idx]
		s = s[1:]
	case c <= asciiMax:
		// 0xxxxxxx == 1100000x 10xxxxxx, the same byte is read again below
		idx = c >> 6
	default:
		return nil, 0, s, errors.Wrapf(ErrMalformed, "continuation byte %#02x at rune start", c)
	}

	if len(s) < int(n)+1 {
		return nil, 0, s, errors.Wrapf(ErrMalformed, "truncated sequence: %#02x needs %d more bytes, got %d", c, n+1, len(s))
	}

	p := &t.root.child[idx]

	for ; n > 0; n-- {
		if p.node == nil {
			if !grow {
				return nil, 0, s, nil
			}
			if t.limit > 0 && t.nodes >= t.limit {
				return nil, 0, s, errors.Wrapf(ErrOutOfMemory, "node limit %d reached", t.limit)
			}
			p.node = &Node{}
			t.nodes++
		}
		p = &p.node.child[s[0]&lowMask]
		s = s[1:]
	}

	return &p.bits, uint(s[0] & lowMask), s[1:], nil
}

// ForEach calls visit for every rune in the set, in ascending order.
// Members of the FE/FF classes can exceed MaxInt32 and come out negative, so read
// values as uint32(r).
func (t *Set) ForEach(visit func(rune)) {
	t.Iter(func(r rune) bool {
		visit(r)
		return true
	})
}

// Iter calls a handler for every rune in the set, in ascending order.
// It returns whether all runes were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Set) Iter(handler func(rune) bool) bool {
	for i := 0; i < fanout; i++ {
		n := leadingOnes[i]
		r := uint32(i) % (fanout >> n) // drop the length bits

		if !iterate(t.root.child[i], n, r, handler) {
			return false
		}
	}
	return true
}

// iterate walks a Ref with n node levels below it. r holds the rune bits
// gathered on the way down.
func iterate(p Ref, n uint8, r uint32, h func(rune) bool) bool {
	if n > 0 {
		if p.node == nil {
			return true
		}
		for c := uint32(0); c < fanout; c++ {
			if !iterate(p.node.child[c], n-1, r*fanout+c, h) {
				return false
			}
		}
		return true
	}
	for c := uint32(0); c < fanout; c++ {
		if (p.bits>>c)&1 != 0 && !h(rune(r*fanout+c)) {
			return false
		}
	}
	return true
}

// Runes returns all runes in ascending order.
func (t *Set) Runes() []rune {
	runes := make([]rune, 0, t.Len())
	t.ForEach(func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

// Len returns the number of runes in the set.
func (t *Set) Len() int {
	var size uint64
	for i := 0; i < fanout; i++ {
		size += count(t.root.child[i], leadingOnes[i])
	}
	return int(size)
}

func count(p Ref, n uint8) (size uint64) {
	if n == 0 {
		return popcount.Count(p.bits)
	}
	if p.node != nil {
		for c := range p.node.child {
			size += count(p.node.child[c], n-1)
		}
	}
	return
}

func (t *Set) Empty() bool {
	return t.Iter(func(rune) bool { return false })
}

func (t *Set) String() string {
	var b strings.Builder

	b.WriteByte('{')
	t.ForEach(func(r rune) {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(Format(r))
	})
	b.WriteByte('}')

	return b.String()
}
