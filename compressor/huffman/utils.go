package huffman

import (
	"container/heap"
	"fmt"
)

type bitString string

// noChild marks an absent child reference in the node arena.
const noChild = -1

// huffmanNode lives in the tree's arena; its id is its arena index.
type huffmanNode struct {
	freq, id    int
	symbol      string
	left, right int
	code        bitString
	hasCode     bool
}

func (node *huffmanNode) isLeaf() bool {
	return node.left == noChild && node.right == noChild
}

func (node *huffmanNode) getFrequency() int {
	return node.freq
}

func (node *huffmanNode) getId() int {
	return node.id
}

// huffmanHeap orders arena indices by frequency, then by id.
type huffmanHeap struct {
	arena *[]huffmanNode
	items []int
}

func newHuffmanHeap(arena *[]huffmanNode, capacity int) *huffmanHeap {
	return &huffmanHeap{
		arena: arena,
		items: make([]int, 0, capacity),
	}
}

func (hub *huffmanHeap) node(i int) *huffmanNode {
	return &(*hub.arena)[hub.items[i]]
}

func (hub *huffmanHeap) Push(item any) {
	hub.items = append(hub.items, item.(int))
}

func (hub *huffmanHeap) Pop() any {
	popped := hub.items[len(hub.items)-1]
	hub.items = hub.items[:len(hub.items)-1]
	return popped
}

func (hub *huffmanHeap) Len() int {
	return len(hub.items)
}

func (hub *huffmanHeap) Less(i, j int) bool {
	x, y := hub.node(i), hub.node(j)
	if x.getFrequency() != y.getFrequency() {
		return x.getFrequency() < y.getFrequency()
	}
	return x.getId() < y.getId()
}

func (hub *huffmanHeap) Swap(i, j int) {
	hub.items[i], hub.items[j] = hub.items[j], hub.items[i]
}

func (hub *huffmanHeap) insert(id int) {
	heap.Push(hub, id)
}

// extractMin panics on an empty heap: the builder never pops more nodes than it pushed.
func (hub *huffmanHeap) extractMin() int {
	if hub.Len() == 0 {
		panic(fmt.Sprintf("huffman: extractMin on empty heap (arena holds %d nodes)", len(*hub.arena)))
	}
	return heap.Pop(hub).(int)
}
