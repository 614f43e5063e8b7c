package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func createFindBitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-bit <queue> <bit>",
		Short: "Print the elements of a queue that have a given bit set",
		Long: `Find-bit scans a queue and prints every element whose bit number <bit>
is set to 1. Bits are numbered from 0 (least significant) to 31.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseQueueNumber(args[0])
			if err != nil {
				return err
			}
			bit, err := strconv.Atoi(args[1])
			if err != nil || bit < 0 || bit > 31 {
				return xerrors.Errorf("bit number should be between 0 and 31, got %q", args[1])
			}
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			q := store.queues[n]
			mask := uint32(1) << bit
			var matches []string
			for i := 0; i < q.Len(); i++ {
				if item := q.Get(i); item&mask != 0 {
					matches = append(matches, strconv.FormatUint(uint64(item), 10))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matches, " "))
			return nil
		},
	}
}
