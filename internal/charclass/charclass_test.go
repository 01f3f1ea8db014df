package charclass

import (
	"fmt"
	"testing"
)

func TestSplitRuneRange_WellFormed(t *testing.T) {
	blk := func(from, to []byte) CodePointBlock {
		if len(from) != len(to) {
			t.Fatalf("test fixture: from/to length mismatch")
		}
		bytes := make([]ByteRange, len(from))
		for i := range from {
			bytes[i] = ByteRange{From: from[i], To: to[i]}
		}
		return CodePointBlock{Bytes: bytes}
	}
	seq := func(b ...byte) []byte {
		return b
	}

	tests := []struct {
		from, to rune
		blocks   []CodePointBlock
	}{
		{
			from: 0x0000,
			to:   0x007f,
			blocks: []CodePointBlock{
				blk(seq(0x00), seq(0x7f)),
			},
		},
		{
			from: 0x0080,
			to:   0x07ff,
			blocks: []CodePointBlock{
				blk(seq(0xc2, 0x80), seq(0xdf, 0xbf)),
			},
		},
		{
			from: 0x0800,
			to:   0x0fff,
			blocks: []CodePointBlock{
				blk(seq(0xe0, 0xa0, 0x80), seq(0xe0, 0xbf, 0xbf)),
			},
		},
		{
			from: 0x1000,
			to:   0xcfff,
			blocks: []CodePointBlock{
				blk(seq(0xe1, 0x80, 0x80), seq(0xec, 0xbf, 0xbf)),
			},
		},
		{
			from: 0xd000,
			to:   0xd7ff,
			blocks: []CodePointBlock{
				blk(seq(0xed, 0x80, 0x80), seq(0xed, 0x9f, 0xbf)),
			},
		},
		{
			from: 0xe000,
			to:   0xffff,
			blocks: []CodePointBlock{
				blk(seq(0xee, 0x80, 0x80), seq(0xef, 0xbf, 0xbf)),
			},
		},
		{
			from: 0x00010000,
			to:   0x0003ffff,
			blocks: []CodePointBlock{
				blk(seq(0xf0, 0x90, 0x80, 0x80), seq(0xf0, 0xbf, 0xbf, 0xbf)),
			},
		},
		{
			from: 0x00040000,
			to:   0x000fffff,
			blocks: []CodePointBlock{
				blk(seq(0xf1, 0x80, 0x80, 0x80), seq(0xf3, 0xbf, 0xbf, 0xbf)),
			},
		},
		{
			from: 0x00100000,
			to:   0x0010ffff,
			blocks: []CodePointBlock{
				blk(seq(0xf4, 0x80, 0x80, 0x80), seq(0xf4, 0x8f, 0xbf, 0xbf)),
			},
		},
		{
			from: 0x0000,
			to:   0x0010ffff,
			blocks: []CodePointBlock{
				blk(seq(0x00), seq(0x7f)),
				blk(seq(0xc2, 0x80), seq(0xdf, 0xbf)),
				blk(seq(0xe0, 0xa0, 0x80), seq(0xe0, 0xbf, 0xbf)),
				blk(seq(0xe1, 0x80, 0x80), seq(0xec, 0xbf, 0xbf)),
				blk(seq(0xed, 0x80, 0x80), seq(0xed, 0x9f, 0xbf)),
				blk(seq(0xee, 0x80, 0x80), seq(0xef, 0xbf, 0xbf)),
				blk(seq(0xf0, 0x90, 0x80, 0x80), seq(0xf0, 0xbf, 0xbf, 0xbf)),
				blk(seq(0xf1, 0x80, 0x80, 0x80), seq(0xf3, 0xbf, 0xbf, 0xbf)),
				blk(seq(0xf4, 0x80, 0x80, 0x80), seq(0xf4, 0x8f, 0xbf, 0xbf)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x..%#x", tt.from, tt.to), func(t *testing.T) {
			blocks, err := SplitRuneRange(tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if len(blocks) != len(tt.blocks) {
				t.Fatalf("unexpected block count: want: %+v, got: %+v", tt.blocks, blocks)
			}
			for i, blk := range blocks {
				want := tt.blocks[i]
				if len(blk.Bytes) != len(want.Bytes) {
					t.Fatalf("unexpected block: want: %+v, got: %+v", want, blk)
				}
				for j := range blk.Bytes {
					if blk.Bytes[j] != want.Bytes[j] {
						t.Fatalf("unexpected block: want: %+v, got: %+v", want, blk)
					}
				}
			}
		})
	}
}

func TestSplitRuneRange_IllFormed(t *testing.T) {
	tests := []struct {
		from, to rune
	}{
		{from: 0x0001, to: 0x0000},     // from > to
		{from: -1, to: 0x0000},         // < U+0000
		{from: 0x0000, to: -1},         // < U+0000
		{from: 0x110000, to: 0x0000},   // > U+10FFFF
		{from: 0x0000, to: 0x110000},   // > U+10FFFF
		{from: 0xd800, to: 0xe000},     // U+D800 (surrogate)
		{from: 0xdfff, to: 0xe000},     // U+DFFF (surrogate)
		{from: 0xcfff, to: 0xd800},     // U+D800 (surrogate)
		{from: 0xcfff, to: 0xdfff},     // U+DFFF (surrogate)
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x..%#x", tt.from, tt.to), func(t *testing.T) {
			blocks, err := SplitRuneRange(tt.from, tt.to)
			if err == nil {
				t.Fatal("expected error didn't occur")
			}
			if blocks != nil {
				t.Fatal("blocks must be nil")
			}
		})
	}
}
