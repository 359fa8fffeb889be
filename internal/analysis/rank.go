package analysis

import "sort"

// wordCount tracks a word's frequency and first-occurrence position so
// ranking stays deterministic across identical inputs.
type wordCount struct {
	word  string
	count int
	first int
}

// topFrequent returns the n most frequent words, most frequent first. Ties
// rank by first occurrence in the input.
func topFrequent(words []string, n int) []string {
	counts := rankByFrequency(words)
	if len(counts) > n {
		counts = counts[:n]
	}
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.word
	}
	return out
}

func rankByFrequency(words []string) []wordCount {
	index := make(map[string]int, len(words))
	counts := make([]wordCount, 0, len(words))
	for i, w := range words {
		if pos, ok := index[w]; ok {
			counts[pos].count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, wordCount{word: w, count: 1, first: i})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].first < counts[j].first
	})
	return counts
}

// dedupeCapped removes duplicates preserving first-seen order and caps the
// result at limit entries.
func dedupeCapped(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, limit)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
