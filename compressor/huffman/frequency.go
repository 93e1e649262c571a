package huffman

// FrequencyTable counts occurrences of each distinct token of one sequence.
// Symbols are kept in order of first appearance.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func CountFrequencies(tokens []string) *FrequencyTable {
	table := &FrequencyTable{
		counts: make(map[string]int),
	}
	for _, token := range tokens {
		if _, ok := table.counts[token]; !ok {
			table.order = append(table.order, token)
		}
		table.counts[token]++
	}
	return table
}

func (table *FrequencyTable) Count(token string) int {
	return table.counts[token]
}

func (table *FrequencyTable) Len() int {
	return len(table.order)
}

// Symbols returns the distinct tokens in order of first appearance.
func (table *FrequencyTable) Symbols() []string {
	return append([]string(nil), table.order...)
}
