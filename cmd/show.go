package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <queue>",
		Short: "Print the size and contents of a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseQueueNumber(args[0])
			if err != nil {
				return err
			}
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			q := store.queues[n]
			var contents strings.Builder
			contents.WriteString("Contents:")
			for i := 0; i < q.Len(); i++ {
				contents.WriteString(" " + strconv.FormatUint(uint64(q.Get(i)), 10))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queue size: %d\n%s\n", q.Len(), contents.String())
			return nil
		},
	}
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <queue>",
		Short: "Print the contents of a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseQueueNumber(args[0])
			if err != nil {
				return err
			}
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatContents(store.queues[n]))
			return nil
		},
	}
}
