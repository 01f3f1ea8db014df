// Package charclass turns a Unicode code point range into the byte-range
// blocks a grammar needs to recognize it as UTF-8. It is adapted from the
// fixed DFA-table code point splitter used elsewhere in this codebase's
// ancestry, repurposed here to feed grammar construction (recognizer's
// CharRange/AnyRune) instead of lexer state tables: a CodePointBlock is
// no longer a pretty-printable DFA transition label, it's a set of
// per-byte-position ranges meant to be assembled into an alternation-of-
// sequences grammar, one Terminal range per UTF-8 byte position.
package charclass

import (
	"fmt"
	"unicode/utf8"
)

// ByteRange is an inclusive range of byte values a single UTF-8 byte
// position may take within a block.
type ByteRange struct {
	From, To byte
}

// CodePointBlock describes a contiguous code point range whose UTF-8
// encoding is a fixed-length byte sequence, continuous in every byte
// position — the cartesian product of Bytes[0]×Bytes[1]×...×Bytes[n-1]
// is exactly the set of valid encodings in the block, with no single
// byte position's range depending on any other's value.
type CodePointBlock struct {
	Bytes []ByteRange
}

// SplitRuneRange splits the code point range from..to (inclusive) into
// blocks satisfying CodePointBlock's per-byte-position independence
// property. It never returns a block touching a surrogate code point
// (U+D800..U+DFFF), since no well-formed UTF-8 byte sequence encodes
// one; from or to landing on a surrogate is reported as an error.
func SplitRuneRange(from, to rune) ([]CodePointBlock, error) {
	spans, err := splitContinuous(from, to)
	if err != nil {
		return nil, err
	}

	blocks := make([]CodePointBlock, len(spans))
	for i, s := range spans {
		fromBuf := make([]byte, utf8.UTFMax)
		toBuf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(fromBuf, s.from)
		m := utf8.EncodeRune(toBuf, s.to)
		if n != m {
			// splitContinuous guarantees same-length encodings within a
			// span; a mismatch here means that invariant broke.
			return nil, fmt.Errorf("charclass: inconsistent encoding length for U+%X..U+%X", s.from, s.to)
		}
		bytes := make([]ByteRange, n)
		for j := 0; j < n; j++ {
			bytes[j] = ByteRange{From: fromBuf[j], To: toBuf[j]}
		}
		blocks[i] = CodePointBlock{Bytes: bytes}
	}
	return blocks, nil
}

type runeSpan struct {
	from, to rune
}

// splitContinuous is the code-point-side split: it cuts from..to at
// every UTF-8 encoded-length boundary and every surrogate gap, so each
// resulting span encodes to byte sequences of one fixed length with no
// discontinuity within a byte position.
//
// https://www.unicode.org/versions/Unicode13.0.0/ch03.pdf > 3.9 Unicode
// Encoding Forms > UTF-8 Table 3-7, Well-Formed UTF-8 Byte Sequences.
func splitContinuous(from, to rune) ([]runeSpan, error) {
	if from > to {
		return nil, fmt.Errorf("charclass: range must be from <= to: U+%X..U+%X", from, to)
	}
	if from < 0x0000 || from > utf8.MaxRune || to < 0x0000 || to > utf8.MaxRune {
		return nil, fmt.Errorf("charclass: code point must be >=U+0000 and <=U+10FFFF: U+%X..U+%X", from, to)
	}
	if isSurrogate(from) || isSurrogate(to) {
		return nil, fmt.Errorf("charclass: surrogate code points U+D800..U+DFFF are not allowed in UTF-8: U+%X..U+%X", from, to)
	}

	var spans []runeSpan
	cursor := from
	for cursor <= to {
		boundary := to
		for _, b := range []rune{0x007f, 0x07ff, 0x0fff, 0xcfff, 0xd7ff, 0xffff, 0x3ffff, 0xfffff} {
			if cursor <= b && to > b {
				boundary = b
				break
			}
		}
		spans = append(spans, runeSpan{from: cursor, to: boundary})
		cursor = boundary + 1
		if isSurrogate(cursor) {
			cursor = 0xe000
		}
	}
	return spans, nil
}

func isSurrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdfff
}
