package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"

	"github.com/FitrahHaque/Compression-Selector/compressor"
)

const hexDigits = "0123456789ABCDEF"

// Tree is a Huffman tree built over one token sequence. Nodes are stored in an
// arena: leaves first in first-appearance order, then internal nodes in the
// order they were merged.
type Tree struct {
	nodes  []huffmanNode
	root   int
	leaves int
	freq   *FrequencyTable
	codes  map[string]bitString
}

// BuildTree merges the two least frequent nodes until one root remains and
// assigns every leaf its root-to-leaf code (0 = left, 1 = right). Equal
// frequencies pop the node with the lower id first.
func BuildTree(tokens []string) *Tree {
	freq := CountFrequencies(tokens)
	tree := &Tree{
		root:   noChild,
		leaves: freq.Len(),
		freq:   freq,
		codes:  make(map[string]bitString, freq.Len()),
	}
	if tree.leaves == 0 {
		return tree
	}
	tree.nodes = make([]huffmanNode, 0, 2*tree.leaves-1)
	treehub := newHuffmanHeap(&tree.nodes, tree.leaves)
	for _, symbol := range freq.order {
		treehub.insert(tree.newNode(freq.counts[symbol], symbol, noChild, noChild))
	}
	for treehub.Len() > 1 {
		x := treehub.extractMin()
		y := treehub.extractMin()
		treehub.insert(tree.newNode(tree.nodes[x].freq+tree.nodes[y].freq, "", x, y))
	}
	tree.root = treehub.extractMin()
	tree.assignCodes(tree.root, "")
	// unreachable leaves would mean a broken merge loop; give them a code rooted at themselves
	for i := 0; i < tree.leaves; i++ {
		if !tree.nodes[i].hasCode {
			tree.assignCodes(i, "")
		}
	}
	return tree
}

func (tree *Tree) newNode(freq int, symbol string, left, right int) int {
	id := len(tree.nodes)
	tree.nodes = append(tree.nodes, huffmanNode{
		freq:   freq,
		id:     id,
		symbol: symbol,
		left:   left,
		right:  right,
	})
	return id
}

func (tree *Tree) assignCodes(id int, prefix bitString) {
	node := &tree.nodes[id]
	if node.isLeaf() {
		node.code, node.hasCode = prefix, true
		tree.codes[node.symbol] = prefix
		return
	}
	left, right := node.left, node.right
	tree.assignCodes(left, prefix+"0")
	tree.assignCodes(right, prefix+"1")
}

// Leaves is the number of distinct tokens in the tree.
func (tree *Tree) Leaves() int {
	return tree.leaves
}

// InternalNodes is the number of merged nodes; always Leaves()-1 for a non-empty tree.
func (tree *Tree) InternalNodes() int {
	return len(tree.nodes) - tree.leaves
}

// RootFrequency is the total number of tokens the tree was built from.
func (tree *Tree) RootFrequency() int {
	if tree.root == noChild {
		return 0
	}
	return tree.nodes[tree.root].freq
}

// Code returns the bit string of a token as '0'/'1' characters.
func (tree *Tree) Code(token string) (string, bool) {
	code, ok := tree.codes[token]
	return string(code), ok
}

// Frequencies returns the table the tree was built from.
func (tree *Tree) Frequencies() *FrequencyTable {
	return tree.freq
}

// Encoder is the Huffman candidate for one token sequence.
type Encoder struct {
	tokens []string
	tree   *Tree
}

func New(tokens []string) *Encoder {
	return &Encoder{
		tokens: tokens,
		tree:   BuildTree(tokens),
	}
}

func (e *Encoder) Method() string {
	return compressor.MethodHuffman
}

func (e *Encoder) Tree() *Tree {
	return e.tree
}

// CompressedBitLength sums the code length of every token.
func (e *Encoder) CompressedBitLength() int {
	size := 0
	for _, token := range e.tokens {
		size += len(e.tree.codes[token])
	}
	return size
}

// Bits concatenates the code of every token.
func (e *Encoder) Bits() string {
	var output strings.Builder
	output.Grow(e.CompressedBitLength())
	for _, token := range e.tokens {
		output.WriteString(string(e.tree.codes[token]))
	}
	return output.String()
}

// Encode packs Bits four at a time into uppercase hex digits. A trailing group
// shorter than four bits is written as its own binary value.
func (e *Encoder) Encode() string {
	return bitString(e.Bits()).asHex()
}

func (b bitString) asHex() string {
	if len(b) == 0 {
		return ""
	}
	var packed bytes.Buffer
	w := bitio.NewWriter(&packed)
	for i := 0; i < len(b); i++ {
		w.TryWriteBool(b[i] == '1')
	}
	if err := w.Close(); err != nil || w.TryError != nil {
		panic(fmt.Sprintf("huffman: packing %d bits into memory: %v", len(b), err))
	}
	r := bitio.NewReader(bytes.NewReader(packed.Bytes()))
	var output strings.Builder
	output.Grow((len(b) + 3) / 4)
	for remaining := len(b); remaining > 0; remaining -= 4 {
		nibble := r.TryReadBits(uint8(min(4, remaining)))
		output.WriteByte(hexDigits[nibble])
	}
	if r.TryError != nil {
		panic(fmt.Sprintf("huffman: reading back %d packed bits: %v", len(b), r.TryError))
	}
	return output.String()
}
