package huffman

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func randomTokens(n int, alphabet string) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = uniuri.NewLenChars(1+i%2, []byte(alphabet))
	}
	return tokens
}

func TestFrequencyTable(t *testing.T) {
	table := CountFrequencies(strings.Fields("b a b c b a"))
	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"b", "a", "c"}, table.Symbols())
	require.Equal(t, 3, table.Count("b"))
	require.Equal(t, 2, table.Count("a"))
	require.Equal(t, 1, table.Count("c"))
	require.Zero(t, table.Count("d"))

	empty := CountFrequencies(nil)
	require.Zero(t, empty.Len())
	require.Empty(t, empty.Symbols())
}

func TestBuildTree(t *testing.T) {
	t.Run("two symbols", func(t *testing.T) {
		e := New(strings.Fields("A A B B B"))
		tree := e.Tree()
		require.Equal(t, 2, tree.Leaves())
		require.Equal(t, 1, tree.InternalNodes())
		require.Equal(t, 5, tree.RootFrequency())
		code, ok := tree.Code("A")
		require.True(t, ok)
		require.Equal(t, "0", code)
		code, ok = tree.Code("B")
		require.True(t, ok)
		require.Equal(t, "1", code)
		require.Equal(t, "00111", e.Bits())
		require.Equal(t, 5, e.CompressedBitLength())
		require.Equal(t, "31", e.Encode())
	})

	t.Run("equal frequencies pop in first appearance order", func(t *testing.T) {
		e := New(strings.Fields("A B C D"))
		for token, want := range map[string]string{"A": "00", "B": "01", "C": "10", "D": "11"} {
			code, _ := e.Tree().Code(token)
			require.Equal(t, want, code, token)
		}
		require.Equal(t, "1B", e.Encode())
	})

	t.Run("merged node loses tie to older leaf", func(t *testing.T) {
		e := New(strings.Fields("A B B C C C"))
		for token, want := range map[string]string{"C": "0", "A": "10", "B": "11"} {
			code, _ := e.Tree().Code(token)
			require.Equal(t, want, code, token)
		}
		require.Equal(t, 9, e.CompressedBitLength())
		require.Equal(t, "BC0", e.Encode())
	})

	t.Run("single symbol", func(t *testing.T) {
		e := New(strings.Fields("X X X X"))
		require.Equal(t, 1, e.Tree().Leaves())
		require.Zero(t, e.Tree().InternalNodes())
		code, ok := e.Tree().Code("X")
		require.True(t, ok)
		require.Empty(t, code)
		require.Zero(t, e.CompressedBitLength())
		require.Empty(t, e.Encode())
	})

	t.Run("empty sequence", func(t *testing.T) {
		e := New(nil)
		require.Zero(t, e.Tree().Leaves())
		require.Zero(t, e.Tree().InternalNodes())
		require.Zero(t, e.Tree().RootFrequency())
		require.Zero(t, e.CompressedBitLength())
		require.Empty(t, e.Encode())
	})
}

func TestTreeProperties(t *testing.T) {
	for i := 0; i < 50; i++ {
		tokens := randomTokens(1+i*7, "ABCDEFGHIJ")
		e := New(tokens)
		tree := e.Tree()
		freq := tree.Frequencies()

		require.Equal(t, freq.Len(), tree.Leaves())
		require.Equal(t, tree.Leaves()-1, tree.InternalNodes())
		require.Equal(t, len(tokens), tree.RootFrequency())

		total := 0
		codes := make([]string, 0, freq.Len())
		for _, symbol := range freq.Symbols() {
			code, ok := tree.Code(symbol)
			require.True(t, ok)
			if tree.Leaves() > 1 {
				require.NotEmpty(t, code)
			}
			total += len(code) * freq.Count(symbol)
			codes = append(codes, code)
		}
		require.Equal(t, total, e.CompressedBitLength())

		for a := range codes {
			for b := range codes {
				if a != b {
					require.False(t, strings.HasPrefix(codes[b], codes[a]), "%q is a prefix of %q", codes[a], codes[b])
				}
			}
		}

		again := New(tokens)
		require.Equal(t, e.Encode(), again.Encode())
		require.Len(t, e.Encode(), (e.CompressedBitLength()+3)/4)
	}
}

func TestAsHex(t *testing.T) {
	tests := []struct {
		bits bitString
		hex  string
	}{
		{"", ""},
		{"0", "0"},
		{"1", "1"},
		{"101", "5"},
		{"0011", "3"},
		{"00111", "31"},
		{"11111", "F1"},
		{"11110000", "F0"},
		{"1010101111001101", "ABCD"},
		{"000000001", "001"},
		{"111111111111111111", "FFFF3"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.hex, tt.bits.asHex(), string(tt.bits))
	}
}

func TestHeapOrder(t *testing.T) {
	arena := []huffmanNode{
		{freq: 5, id: 0, left: noChild, right: noChild},
		{freq: 1, id: 1, left: noChild, right: noChild},
		{freq: 5, id: 2, left: noChild, right: noChild},
		{freq: 3, id: 3, left: noChild, right: noChild},
		{freq: 1, id: 4, left: noChild, right: noChild},
	}
	hub := newHuffmanHeap(&arena, len(arena))
	for i := range arena {
		hub.insert(i)
	}
	var order []int
	for hub.Len() > 0 {
		order = append(order, hub.extractMin())
	}
	require.Equal(t, []int{1, 4, 3, 0, 2}, order)
}

func TestHeapUnderflow(t *testing.T) {
	var arena []huffmanNode
	hub := newHuffmanHeap(&arena, 0)
	require.Panics(t, func() {
		hub.extractMin()
	})
}
