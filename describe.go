package frp

import "github.com/AnatoleLucet/frp/internal"

// Description is a snapshot of a stream and everything downstream of it.
type Description = internal.Description

// Describe captures the graph below s.
func Describe(s Node) Description {
	return internal.Describe(nodeOf(s))
}

// Tree renders the graph below s, one node per line. Edges into merge
// streams are marked with "~".
func Tree(s Node) string {
	return internal.Tree(Describe(s))
}
