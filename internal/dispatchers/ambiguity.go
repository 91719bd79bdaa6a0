package dispatchers

import "slices"

// AmbiguityConsumer receives a pair of siblings under parent where inputs,
// examples of child, would also be accepted by sibling.
type AmbiguityConsumer func(parent, child, sibling *Node, inputs []string)

// FindAmbiguities walks the whole tree and reports every ambiguous sibling
// pair. Redirects are not followed.
func (d *Dispatcher) FindAmbiguities(fn AmbiguityConsumer) {
	d.root.FindAmbiguities(fn)
}

// FindAmbiguities reports ambiguous pairs among n's descendants.
func (n *Node) FindAmbiguities(fn AmbiguityConsumer) {
	for _, child := range n.order {
		for _, sibling := range n.order {
			if child == sibling {
				continue
			}

			var matches []string
			for _, input := range child.Examples() {
				if sibling.IsValidInput(input) && !slices.Contains(matches, input) {
					matches = append(matches, input)
				}
			}
			if len(matches) > 0 {
				fn(n, child, sibling, matches)
			}
		}
		child.FindAmbiguities(fn)
	}
}
