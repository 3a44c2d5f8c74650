// Package utfset defines a set of runes stored in a tree that mirrors the UTF-8
// encoding of its members.
//
// A Set is a 64-ary tree with booleans for leaves. Every Node holds 64 Refs, and a
// Ref is either a pointer to a child Node or, when the children would all be
// booleans, a 64-bit bitmask kept in place of the pointer. Apart from the root,
// all Refs of a Node are of the same kind.
//
// Root layout:
// -----------
//
// The root is indexed by the x bits of a leading byte 11xxxxxx. The number of
// leading ones in xxxxxx tells how many more node levels sit below the root Ref:
//
//	root index   leading byte   bytes   levels   ref kind
//	----------   ------------   -----   ------   -----------------------------
//	 0 .. 31     C0 .. DF         2       0      bitmask
//	32 .. 47     E0 .. EF         3       1      *Node{bitmask}
//	48 .. 55     F0 .. F7         4       2      *Node{*Node{bitmask}}
//	56 .. 59     F8 .. FB         5       3      ...
//	60 .. 61     FC .. FD         6       4      ...
//	      62     FE               7       5      ...
//	      63     FF               8       6      ...
//
// Rows from F8 onwards are not valid UTF-8 (RFC 3629) but are stored all the same.
//
// Every level below the root is indexed by the x bits of a continuation byte
// 10xxxxxx, and the last continuation byte selects a bit of the bitmask.
//
// ASCII:
// -----
//
// An ASCII byte 0xxxxxxx is handled as if it were the pair 1100000x 10xxxxxx: its
// 7th bit picks root index 0 or 1 and the same byte is read again for the bit.
// Those root Refs are bitmasks, so ASCII never allocates.
//
// Example:
// -------
//
// The set {U+0061 'a', U+00E9 'é', U+20AC '€'} looks like this:
//
//	root[1]  = bitmask{33}                   61    = 01_100001
//	root[3]  = bitmask{41}                   C3 A9 = 110_00011 10_101001
//	root[34] = *Node{ [2] = bitmask{44} }    E2 82 AC
//
// Overlong encodings:
// ------------------
//
// Overlong sequences are not rejected. Two-byte ones (C0, C1) share the ASCII
// paths, but longer ones land on a path of their own, so the set may then hold a
// rune twice and iteration order is no longer strictly ascending.
package utfset
