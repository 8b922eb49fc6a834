package persist

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/oracle"
)

func toRectWire(r csr.Rect) rectWire {
	return rectWire{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

func fromRectWire(r rectWire) csr.Rect {
	return csr.Rect{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

func toValuesWire(v oracle.Values) valuesWire {
	return valuesWire{
		S: v.S, T: v.T,
		DST: v.DST, DSP: v.DSP, DPT: v.DPT,
		RAF: v.RAF, RAB: v.RAB, RBF: v.RBF, RBB: v.RBB,
	}
}

func fromValuesWire(v valuesWire) oracle.Values {
	return oracle.Values{
		S: v.S, T: v.T,
		DST: v.DST, DSP: v.DSP, DPT: v.DPT,
		RAF: v.RAF, RAB: v.RAB, RBF: v.RBF, RBB: v.RBB,
	}
}

func toBlockPairWire(bp *oracle.BlockPair) blockPairWire {
	return blockPairWire{
		S:       toRectWire(bp.SBlock),
		T:       toRectWire(bp.TBlock),
		POI:     bp.POI,
		Epsilon: bp.Epsilon,
		V:       toValuesWire(bp.V),
	}
}

func fromBlockPairWire(w blockPairWire) *oracle.BlockPair {
	return &oracle.BlockPair{
		SBlock:  fromRectWire(w.S),
		TBlock:  fromRectWire(w.T),
		POI:     w.POI,
		Epsilon: w.Epsilon,
		V:       fromValuesWire(w.V),
	}
}

// EncodeOracle writes o as a ".omp" document. The R-tree is never
// serialized; DecodeOracle rebuilds it from the block-pair vector via
// oracle.Restore.
func EncodeOracle(w io.Writer, o *oracle.Oracle) error {
	wire := oracleWire{POI: o.POI()}
	for _, bp := range o.Pairs() {
		wire.Pairs = append(wire.Pairs, toBlockPairWire(bp))
	}
	return msgpack.NewEncoder(w).Encode(&wire)
}

// DecodeOracle reads a ".omp" document and reconstructs the oracle,
// re-inserting every block-pair's R-tree leaves.
func DecodeOracle(r io.Reader) (*oracle.Oracle, error) {
	var wire oracleWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}
	pairs := make([]*oracle.BlockPair, len(wire.Pairs))
	for i, p := range wire.Pairs {
		pairs[i] = fromBlockPairWire(p)
	}
	return oracle.Restore(wire.POI, pairs), nil
}

// EncodeCollection writes every oracle in c to w as one file. The CLI's
// build subcommand does not use it; it writes one ".omp" file per POI.
func EncodeCollection(w io.Writer, c *oracle.OracleCollection) error {
	wire := collectionWire{}
	for _, poi := range c.POIs() {
		o, _ := c.Get(poi)
		ow := oracleWire{POI: o.POI()}
		for _, bp := range o.Pairs() {
			ow.Pairs = append(ow.Pairs, toBlockPairWire(bp))
		}
		wire.Oracles = append(wire.Oracles, ow)
	}
	return msgpack.NewEncoder(w).Encode(&wire)
}

// DecodeCollection reads a multi-oracle file back into an
// OracleCollection.
func DecodeCollection(r io.Reader) (*oracle.OracleCollection, error) {
	var wire collectionWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}
	c := oracle.NewOracleCollection()
	for _, ow := range wire.Oracles {
		pairs := make([]*oracle.BlockPair, len(ow.Pairs))
		for i, p := range ow.Pairs {
			pairs[i] = fromBlockPairWire(p)
		}
		c.Insert(oracle.Restore(ow.POI, pairs))
	}
	return c, nil
}
