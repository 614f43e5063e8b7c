package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/queuectl/queuectl/internal/version"
	"github.com/queuectl/queuectl/lib/logctx"
)

const (
	FlagCapacity   = "capacity"
	FlagMode       = "mode"
	FlagQueue1File = "queue1-file"
	FlagQueue2File = "queue2-file"
)

const envPrefix = "QUEUECTL"

const (
	// ModeFIFO dequeues the element that has been waiting the longest.
	ModeFIFO = "fifo"
	// ModeLIFO dequeues the element added most recently.
	ModeLIFO = "lifo"
)

func CreateRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "queuectl",
		Short: "Queues manager",
		Long: `queuectl manages two fixed-capacity queues of unsigned 32-bit integers.

The queues are loaded from their backing files before every command and are
saved back only when the command succeeds. A missing backing file means an
empty queue. Elements may be given in decimal, hex (0x prefix) or octal
(0 prefix).

The merge command brings the queues together like a zipper slider: queues
holding 1 2 3 and 4 5 6 merge into 1 4 2 5 3 6 inside queue 1, and queue 2
becomes empty.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			cmd.SetContext(logctx.WithLogger(cmd.Context(), logger))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int(FlagCapacity, 10, "maximum number of elements each queue may hold")
	flags.String(FlagMode, ModeLIFO, "dequeue mode: fifo or lifo")
	flags.String(FlagQueue1File, ".queue1", "file backing queue 1")
	flags.String(FlagQueue2File, ".queue2", "file backing queue 2")
	for _, flag := range []string{FlagCapacity, FlagMode, FlagQueue1File, FlagQueue2File} {
		if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		createAddCmd(),
		createRemoveCmd(),
		createShowCmd(),
		createListCmd(),
		createMergeCmd(),
		createFindBitCmd(),
		createPopCmd(),
		createWatchCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := CreateRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
