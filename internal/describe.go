package internal

import (
	"fmt"
	"strings"
)

// Description is a read-only picture of a node and everything below it.
type Description struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name,omitempty"`
	Kind      Kind          `yaml:"kind"`
	Observers int           `yaml:"observers"`
	Updates   int           `yaml:"updates"`
	Next      []Description `yaml:"next,omitempty"`
	Lazy      []Description `yaml:"lazy,omitempty"`
}

// Describe walks n like DeepRefs does: shared nodes appear under each parent.
func Describe(n *Node) Description {
	e := n.edges()

	d := Description{
		ID:        n.id.String(),
		Name:      n.Name(),
		Kind:      n.kind,
		Observers: len(e.observers),
		Updates:   len(e.updates),
	}
	for _, child := range e.next {
		d.Next = append(d.Next, Describe(child))
	}
	for _, m := range e.lazyNext {
		d.Lazy = append(d.Lazy, Describe(m))
	}

	return d
}

func (d Description) label() string {
	if d.Name != "" {
		return d.Name
	}

	return string(d.Kind) + ":" + d.ID[:8]
}

// Tree renders d as an indented tree. Merge edges are marked with "~".
func Tree(d Description) string {
	var sb strings.Builder
	writeTree(&sb, d, false, "", "")
	return sb.String()
}

func writeTree(sb *strings.Builder, d Description, lazy bool, prefix, childPrefix string) {
	marker := ""
	if lazy {
		marker = "~"
	}
	fmt.Fprintf(sb, "%s%s%s [%s] observers=%d updates=%d\n",
		prefix, marker, d.label(), d.Kind, d.Observers, d.Updates)

	type edge struct {
		d    Description
		lazy bool
	}

	children := make([]edge, 0, len(d.Next)+len(d.Lazy))
	for _, c := range d.Next {
		children = append(children, edge{c, false})
	}
	for _, c := range d.Lazy {
		children = append(children, edge{c, true})
	}

	for i, c := range children {
		if i == len(children)-1 {
			writeTree(sb, c.d, c.lazy, childPrefix+"└── ", childPrefix+"    ")
		} else {
			writeTree(sb, c.d, c.lazy, childPrefix+"├── ", childPrefix+"│   ")
		}
	}
}
