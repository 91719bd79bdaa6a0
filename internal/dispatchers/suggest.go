package dispatchers

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// levenshtein returns the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	// Initialize first column
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}

	// Initialize first row
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	// Fill in the rest of the matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type similar struct {
	name     string
	distance int
}

// SimilarLiterals returns up to maxResults literal children of node that
// source may use and that look like input: within a small edit distance, or
// containing input's characters in order. Closest names come first.
func SimilarLiterals(input string, node *Node, source any, maxResults int) []string {
	if node == nil || input == "" {
		return nil
	}

	const maxDistance = 3

	var names []string
	for _, child := range node.Children() {
		if child.Kind() == KindLiteral && child.CanUse(source) {
			names = append(names, child.Name())
		}
	}

	found := make(map[string]int)
	for _, name := range names {
		if dist := levenshtein(input, name); dist <= maxDistance && dist > 0 {
			found[name] = dist
		}
	}
	for _, rank := range fuzzy.RankFindFold(input, names) {
		if rank.Distance == 0 {
			continue
		}
		if _, ok := found[rank.Target]; !ok {
			found[rank.Target] = maxDistance + rank.Distance
		}
	}

	matches := make([]similar, 0, len(found))
	for name, dist := range found {
		matches = append(matches, similar{name: name, distance: dist})
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.name
	}
	return result
}

// LiteralPaths collects the space-joined paths of every literal reachable
// from node without following redirects.
func LiteralPaths(node *Node, prefix string) []string {
	if node == nil {
		return nil
	}

	var paths []string
	for _, child := range node.Children() {
		if child.Kind() != KindLiteral {
			continue
		}
		full := child.Name()
		if prefix != "" {
			full = prefix + ArgumentSeparatorString + child.Name()
		}
		paths = append(paths, full)
		paths = append(paths, LiteralPaths(child, full)...)
	}
	return paths
}
