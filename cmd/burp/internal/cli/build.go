package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beerpath/burp/oracle"
	"github.com/beerpath/burp/persist"
	"github.com/beerpath/burp/spatial"
)

func newBuildCmd() *cobra.Command {
	var epsilon float64
	var outFile string
	var writeSplitTree, merge bool

	cmd := &cobra.Command{
		Use:   "build <in.gmp>",
		Short: "Build one oracle per POI recorded in a .gmp file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], epsilon, outFile, writeSplitTree, merge)
		},
	}
	cmd.Flags().Float64VarP(&epsilon, "epsilon", "e", 0, "detour tolerance epsilon")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output .omp base path (default: <in>.omp); suffixed _<poi-id>")
	cmd.Flags().BoolVarP(&writeSplitTree, "split-tree", "s", false, "also write each POI's split-tree as a .smp file")
	cmd.Flags().BoolVarP(&merge, "merge", "m", false, "enable merge-based oracle size reduction")
	cmd.MarkFlagRequired("epsilon")
	return cmd
}

func runBuild(inFile string, epsilon float64, outFile string, writeSplitTree, merge bool) error {
	in, err := os.Open(inFile)
	if err != nil {
		return ioErr(fmt.Errorf("opening %s: %w", inFile, err))
	}
	defer in.Close()

	g, poiNodes, err := persist.DecodeGraph(in)
	if err != nil {
		return parseErr(fmt.Errorf("decoding %s: %w", inFile, err))
	}
	if len(poiNodes) == 0 {
		return buildErr(fmt.Errorf("%s carries no POI nodes", inFile))
	}

	sg := spatial.New(g)
	opts := []oracle.Option{oracle.WithMerge(merge)}

	collection, trees, err := oracle.BuildForNodes(poiNodes, epsilon, sg, opts...)
	if err != nil {
		if errors.Is(err, oracle.ErrEmptyGraph) {
			return buildErr(err)
		}
		return buildErr(fmt.Errorf("building oracles: %w", err))
	}

	if outFile == "" {
		outFile = defaultOutFile(inFile, ".omp")
	}
	base := strings.TrimSuffix(outFile, filepath.Ext(outFile))
	ext := filepath.Ext(outFile)
	if ext == "" {
		ext = ".omp"
	}

	for _, poi := range collection.POIs() {
		o, _ := collection.Get(poi)
		path := base + "_" + strconv.Itoa(poi) + ext
		if err := writeOracleFile(path, o); err != nil {
			return err
		}
		log.Infof("wrote %s (%d block-pairs)", path, o.Size())

		if writeSplitTree {
			smpPath := base + "_" + strconv.Itoa(poi) + ".smp"
			if err := writeSplitTreeFile(smpPath, trees[poi]); err != nil {
				return err
			}
			log.Infof("wrote %s", smpPath)
		}
	}
	return nil
}

func writeOracleFile(path string, o *oracle.Oracle) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr(fmt.Errorf("creating %s: %w", path, err))
	}
	defer f.Close()
	if err := persist.EncodeOracle(f, o); err != nil {
		return ioErr(fmt.Errorf("writing %s: %w", path, err))
	}
	return nil
}

func writeSplitTreeFile(path string, t *oracle.SplitTree) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr(fmt.Errorf("creating %s: %w", path, err))
	}
	defer f.Close()
	if err := persist.EncodeSplitTree(f, t); err != nil {
		return ioErr(fmt.Errorf("writing %s: %w", path, err))
	}
	return nil
}
