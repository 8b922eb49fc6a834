package persist

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/beerpath/burp/oracle"
)

// EncodeSplitTree writes t as a ".smp" document: a flat, arena-ordered
// node list. Child lists are not stored; RestoreSplitTree re-derives
// them from each node's parent index.
func EncodeSplitTree(w io.Writer, t *oracle.SplitTree) error {
	wire := splitTreeWire{Nodes: make([]splitNodeWire, t.Len())}
	for i := 0; i < t.Len(); i++ {
		wire.Nodes[i] = splitNodeWire{
			Pair:   toBlockPairWire(t.Pair(i)),
			Kept:   t.Kept(i),
			Parent: t.Parent(i),
		}
	}
	return msgpack.NewEncoder(w).Encode(&wire)
}

// DecodeSplitTree reads a ".smp" document back into a SplitTree.
func DecodeSplitTree(r io.Reader) (*oracle.SplitTree, error) {
	var wire splitTreeWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}
	records := make([]oracle.SplitTreeNode, len(wire.Nodes))
	for i, n := range wire.Nodes {
		records[i] = oracle.SplitTreeNode{Pair: fromBlockPairWire(n.Pair), Kept: n.Kept, Parent: n.Parent}
	}
	return oracle.RestoreSplitTree(records), nil
}

// EncodeSplitTrees writes a batch of per-POI split-trees (the form
// BuildForNodes returns) to w as one file.
func EncodeSplitTrees(w io.Writer, trees map[int]*oracle.SplitTree) error {
	wire := splitTreeCollectionWire{Trees: make(map[int]splitTreeWire, len(trees))}
	for poi, t := range trees {
		nodes := make([]splitNodeWire, t.Len())
		for i := 0; i < t.Len(); i++ {
			nodes[i] = splitNodeWire{
				Pair:   toBlockPairWire(t.Pair(i)),
				Kept:   t.Kept(i),
				Parent: t.Parent(i),
			}
		}
		wire.Trees[poi] = splitTreeWire{Nodes: nodes}
	}
	return msgpack.NewEncoder(w).Encode(&wire)
}

// DecodeSplitTrees reads a multi-POI split-tree file back into a map.
func DecodeSplitTrees(r io.Reader) (map[int]*oracle.SplitTree, error) {
	var wire splitTreeCollectionWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}
	out := make(map[int]*oracle.SplitTree, len(wire.Trees))
	for poi, tw := range wire.Trees {
		records := make([]oracle.SplitTreeNode, len(tw.Nodes))
		for i, n := range tw.Nodes {
			records[i] = oracle.SplitTreeNode{Pair: fromBlockPairWire(n.Pair), Kept: n.Kept, Parent: n.Parent}
		}
		out[poi] = oracle.RestoreSplitTree(records)
	}
	return out, nil
}
