package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

func createPopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pop <queue>",
		Short: "Dequeue an element from a queue and print it",
		Long: `Pop removes one element from a queue and prints it. In fifo mode the
element that has been in the queue the longest comes out; in lifo mode the
most recently added one does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseQueueNumber(args[0])
			if err != nil {
				return err
			}
			mode := viper.GetString(FlagMode)
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			// add inserts at the back, so the oldest element sits at
			// the front.
			var value uint32
			switch mode {
			case ModeFIFO:
				value, err = store.queues[n].PopFront()
			case ModeLIFO:
				value, err = store.queues[n].PopBack()
			default:
				return xerrors.Errorf("mode should be either fifo or lifo, got %q", mode)
			}
			if err != nil {
				return xerrors.Errorf("can't dequeue queue %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return store.save()
		},
	}
}
