package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/beerpath/burp/csr"
	"github.com/beerpath/burp/geoinput"
	"github.com/beerpath/burp/persist"
	"github.com/beerpath/burp/spatial"
)

func newGraphCmd() *cobra.Command {
	var outFile, poisFile string
	var sampleN int

	cmd := &cobra.Command{
		Use:   "graph <in>",
		Short: "Read GeoJSON, build a graph, optionally attach POIs, write a .gmp file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0], outFile, poisFile, sampleN)
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output .gmp path (default: <in>.gmp)")
	cmd.Flags().StringVarP(&poisFile, "pois", "p", "", "GeoJSON file of POI point features to attach")
	cmd.Flags().IntVarP(&sampleN, "sample", "s", 0, "sample N node ids at random as POIs")
	cmd.MarkFlagsMutuallyExclusive("pois", "sample")
	return cmd
}

func runGraph(inFile, outFile, poisFile string, sampleN int) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return ioErr(fmt.Errorf("reading %s: %w", inFile, err))
	}

	res, err := geoinput.ParseBytes(data)
	if err != nil {
		return parseErr(fmt.Errorf("parsing %s: %w", inFile, err))
	}

	g, err := csr.Build(res.Values, res.Edges)
	if err != nil {
		return buildErr(fmt.Errorf("building graph from %s: %w", inFile, err))
	}
	log.Infof("built graph: %d nodes, %d edges", g.NodeCount(), len(res.Edges))

	poiNodes, err := attachPOIs(g, poisFile, sampleN)
	if err != nil {
		return err
	}
	log.Infof("attached %d POI nodes", len(poiNodes))

	if outFile == "" {
		outFile = defaultOutFile(inFile, ".gmp")
	}
	out, err := os.Create(outFile)
	if err != nil {
		return ioErr(fmt.Errorf("creating %s: %w", outFile, err))
	}
	defer out.Close()

	if err := persist.EncodeGraph(out, g, poiNodes); err != nil {
		if errors.Is(err, persist.ErrNoBoundingRect) {
			return buildErr(err)
		}
		return ioErr(fmt.Errorf("writing %s: %w", outFile, err))
	}
	log.Infof("wrote %s", outFile)
	return nil
}

func attachPOIs(g *csr.Graph, poisFile string, sampleN int) ([]int, error) {
	switch {
	case poisFile != "":
		data, err := os.ReadFile(poisFile)
		if err != nil {
			return nil, ioErr(fmt.Errorf("reading %s: %w", poisFile, err))
		}
		pois, err := geoinput.ParsePOIs(data, nil)
		if err != nil {
			return nil, parseErr(fmt.Errorf("parsing %s: %w", poisFile, err))
		}
		sg := spatial.New(g)
		ids := make([]int, 0, len(pois))
		for _, p := range pois {
			id, _, ok := sg.NearestNode(p.Coord)
			if !ok {
				continue
			}
			if err := g.SetPOI(id, p.Data); err != nil {
				continue
			}
			ids = append(ids, id)
		}
		return ids, nil

	case sampleN > 0:
		n := g.NodeCount()
		if sampleN > n {
			sampleN = n
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		perm := rng.Perm(n)
		return append([]int(nil), perm[:sampleN]...), nil

	default:
		return nil, nil
	}
}

func defaultOutFile(inFile, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
	return filepath.Join(filepath.Dir(inFile), base+ext)
}
