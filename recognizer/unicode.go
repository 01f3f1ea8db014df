package recognizer

import "github.com/mjbshaw/derp/internal/charclass"

// CharRange builds a Grammar[byte] matching exactly the UTF-8 encodings
// of the code points from..to (inclusive), as an alternation over
// charclass.SplitRuneRange's blocks, each block itself a sequence of
// per-byte-position alternations. It is the byte-oriented grammar
// equivalent of a lexer's character-range rule: the result is a Grammar
// over bytes, meant to be combined with other byte grammars via Or,
// Then and friends, or driven directly by a Recognizer over a []byte
// input.
func CharRange(f *Factory[byte], from, to rune) (*Grammar[byte], error) {
	blocks, err := charclass.SplitRuneRange(from, to)
	if err != nil {
		return nil, err
	}

	var whole *Grammar[byte]
	for _, blk := range blocks {
		g, err := blockGrammar(f, blk)
		if err != nil {
			return nil, err
		}
		if whole == nil {
			whole = g
			continue
		}
		whole, err = whole.Or(g)
		if err != nil {
			return nil, err
		}
	}
	return whole, nil
}

// AnyRune builds a Grammar[byte] matching the UTF-8 encoding of any
// scalar value in U+0000..U+10FFFF.
func AnyRune(f *Factory[byte]) (*Grammar[byte], error) {
	return CharRange(f, 0x0000, 0x10FFFF)
}

func blockGrammar(f *Factory[byte], blk charclass.CodePointBlock) (*Grammar[byte], error) {
	var seq *Grammar[byte]
	for _, br := range blk.Bytes {
		pos, err := byteRangeGrammar(f, br)
		if err != nil {
			return nil, err
		}
		if seq == nil {
			seq = pos
			continue
		}
		seq, err = seq.Then(pos)
		if err != nil {
			return nil, err
		}
	}
	return seq, nil
}

func byteRangeGrammar(f *Factory[byte], br charclass.ByteRange) (*Grammar[byte], error) {
	g := f.Terminal(br.From)
	for b := int(br.From) + 1; b <= int(br.To); b++ {
		var err error
		g, err = g.Or(f.Terminal(byte(b)))
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}
