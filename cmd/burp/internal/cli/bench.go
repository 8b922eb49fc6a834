package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/beerpath/burp/oracle"
	"github.com/beerpath/burp/persist"
	"github.com/beerpath/burp/spatial"
)

// benchEpsilons is the fixed epsilon sweep measured per batch; there is
// no CLI flag to override it.
var benchEpsilons = []float64{0.1, 0.25, 0.5}

func newBenchCmd() *cobra.Command {
	var batch int
	var withSplitTreeStats bool

	cmd := &cobra.Command{
		Use:   "bench <in.gmp>",
		Short: "Measure oracle build time and size over a batch of random POIs, per epsilon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0], batch, withSplitTreeStats)
		},
	}
	cmd.Flags().IntVarP(&batch, "batch", "b", 10, "number of random POIs sampled per epsilon")
	cmd.Flags().BoolVarP(&withSplitTreeStats, "split-tree-stats", "s", false, "also report mean split-tree size")
	cmd.MarkFlagRequired("batch")
	return cmd
}

type benchRow struct {
	epsilon       float64
	meanSize      float64
	meanSplitSize float64
	meanBuildTime time.Duration
}

func runBench(inFile string, batch int, withSplitTreeStats bool) error {
	in, err := os.Open(inFile)
	if err != nil {
		return ioErr(fmt.Errorf("opening %s: %w", inFile, err))
	}
	defer in.Close()

	g, _, err := persist.DecodeGraph(in)
	if err != nil {
		return parseErr(fmt.Errorf("decoding %s: %w", inFile, err))
	}
	if g.NodeCount() == 0 {
		return buildErr(fmt.Errorf("%s has no nodes", inFile))
	}
	log.Infof("loaded graph: %d nodes, %d edges", g.NodeCount(), len(g.Edges()))

	sg := spatial.New(g)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	rows := make([]benchRow, len(benchEpsilons))
	for i, eps := range benchEpsilons {
		row := benchRow{epsilon: eps}
		for n := 1; n <= batch; n++ {
			poi := rng.Intn(g.NodeCount())

			start := time.Now()
			o, tree, err := oracle.BuildForNode(poi, eps, sg)
			elapsed := time.Since(start)
			if err != nil {
				return buildErr(fmt.Errorf("building oracle for node %d at eps=%v: %w", poi, eps, err))
			}

			row.meanSize += (float64(o.Size()) - row.meanSize) / float64(n)
			row.meanBuildTime += (elapsed - row.meanBuildTime) / time.Duration(n)
			if withSplitTreeStats {
				row.meanSplitSize += (float64(tree.Len()) - row.meanSplitSize) / float64(n)
			}
		}
		rows[i] = row
	}

	for _, row := range rows {
		if withSplitTreeStats {
			fmt.Printf("eps=%.3f  mean_size=%.2f  mean_split_tree_size=%.2f  mean_build_time=%s\n",
				row.epsilon, row.meanSize, row.meanSplitSize, row.meanBuildTime)
		} else {
			fmt.Printf("eps=%.3f  mean_size=%.2f  mean_build_time=%s\n",
				row.epsilon, row.meanSize, row.meanBuildTime)
		}
	}
	return nil
}
