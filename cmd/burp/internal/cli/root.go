package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "burp",
		Short:         "Beer-path detour oracle: build graphs, build oracles, benchmark builds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGraphCmd(), newBuildCmd(), newBenchCmd())
	return root
}

func configureLogging() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("LOG_LEVEL=%q is not a recognized level, defaulting to info", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

// Execute parses and runs a single CLI invocation, returning the
// process exit code (0 success, 1 I/O error, 2 parse
// error, 3 build error). Any nonzero result has already printed a
// diagnostic to stderr.
func Execute(args []string) int {
	configureLogging()

	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.Error())
		return ee.code
	}

	// Any error cobra itself produced (bad flags, unknown subcommand) is
	// a usage/parse problem, not an I/O or build failure.
	fmt.Fprintln(os.Stderr, err.Error())
	return exitParse
}
