package dispatchers

import "strings"

const (
	usageOptionalOpen  = "["
	usageOptionalClose = "]"
	usageRequiredOpen  = "("
	usageRequiredClose = ")"
	usageOr            = "|"
)

// AllUsage lists every executable path below node, one string per path,
// relative to node. With restricted set, nodes source may not use are
// skipped.
func (d *Dispatcher) AllUsage(node *Node, source any, restricted bool) []string {
	var result []string
	d.allUsage(node, source, &result, "", restricted)
	return result
}

func (d *Dispatcher) allUsage(node *Node, source any, result *[]string, prefix string, restricted bool) {
	if restricted && !node.CanUse(source) {
		return
	}

	if node.Command() != nil {
		*result = append(*result, prefix)
	}

	if node.Redirect() != nil {
		redirect := d.redirectUsage(node)
		if prefix == "" {
			*result = append(*result, node.UsageText()+ArgumentSeparatorString+redirect)
		} else {
			*result = append(*result, prefix+ArgumentSeparatorString+redirect)
		}
		return
	}

	for _, child := range node.Children() {
		next := child.UsageText()
		if prefix != "" {
			next = prefix + ArgumentSeparatorString + next
		}
		d.allUsage(child, source, result, next, restricted)
	}
}

// Usage pairs a child node with its condensed usage string.
type Usage struct {
	Node *Node
	Text string
}

// SmartUsage returns one condensed usage string for each child of node that
// source can use, in child order. Optional parts are shown in brackets and
// alternatives in parentheses separated by bars.
func (d *Dispatcher) SmartUsage(node *Node, source any) []Usage {
	var result []Usage
	optional := node.Command() != nil
	for _, child := range node.Children() {
		if text, ok := d.smartUsage(child, source, optional, false); ok {
			result = append(result, Usage{Node: child, Text: text})
		}
	}
	return result
}

func (d *Dispatcher) smartUsage(node *Node, source any, optional, deep bool) (string, bool) {
	if !node.CanUse(source) {
		return "", false
	}

	self := node.UsageText()
	if optional {
		self = usageOptionalOpen + self + usageOptionalClose
	}
	if deep {
		return self, true
	}

	childOptional := node.Command() != nil
	open, close := usageRequiredOpen, usageRequiredClose
	if childOptional {
		open, close = usageOptionalOpen, usageOptionalClose
	}

	if node.Redirect() != nil {
		return self + ArgumentSeparatorString + d.redirectUsage(node), true
	}

	var children []*Node
	for _, child := range node.Children() {
		if child.CanUse(source) {
			children = append(children, child)
		}
	}

	switch {
	case len(children) == 1:
		if text, ok := d.smartUsage(children[0], source, childOptional, childOptional); ok {
			return self + ArgumentSeparatorString + text, true
		}

	case len(children) > 1:
		var distinct []string
		seen := make(map[string]bool)
		for _, child := range children {
			if text, ok := d.smartUsage(child, source, childOptional, true); ok && !seen[text] {
				seen[text] = true
				distinct = append(distinct, text)
			}
		}

		if len(distinct) == 1 {
			text := distinct[0]
			if childOptional {
				text = usageOptionalOpen + text + usageOptionalClose
			}
			return self + ArgumentSeparatorString + text, true
		}
		if len(distinct) > 1 {
			names := make([]string, len(children))
			for i, child := range children {
				names[i] = child.UsageText()
			}
			return self + ArgumentSeparatorString + open + strings.Join(names, usageOr) + close, true
		}
	}

	return self, true
}

func (d *Dispatcher) redirectUsage(node *Node) string {
	if node.Redirect() == d.root {
		return "..."
	}
	return "-> " + node.Redirect().UsageText()
}
