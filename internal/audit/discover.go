package audit

import (
	"context"
	"log"
)

// maxDepth guards against a malformed hierarchy; the identity service caps
// compartment nesting far below this.
const maxDepth = 50

const pathSeparator = " > "

// Discover walks the compartment tree depth-first from the tenancy root and
// returns every reachable compartment in pre-order, parent before children.
// A child listing that fails degrades to an empty one so a permission gap on
// one branch does not abort the walk.
func Discover(ctx context.Context, dir Directory, rootID, rootName string) []CompartmentNode {
	nodes := make([]CompartmentNode, 0, 16)
	walk(ctx, dir, &nodes, rootID, rootName, 0, rootName)
	return nodes
}

func walk(ctx context.Context, dir Directory, out *[]CompartmentNode, id, name string, depth int, path string) {
	*out = append(*out, CompartmentNode{ID: id, Name: name, Depth: depth, Path: path})

	if depth >= maxDepth {
		log.Printf("compartment %s at depth %d, not descending further", id, depth)
		return
	}

	children, err := dir.ListChildCompartments(ctx, id)
	if err != nil {
		log.Printf("listing children of %s failed, treating as leaf: %v", id, err)
		return
	}

	for _, c := range children {
		walk(ctx, dir, out, c.ID, c.Name, depth+1, path+pathSeparator+c.Name)
	}
}
