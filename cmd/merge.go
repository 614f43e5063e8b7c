package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func createMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge queue 2 into queue 1 in a zipper pattern",
		Long: `Merge interleaves the two queues element by element, starting with
queue 1, until the shorter one runs out; the rest of the longer queue follows
in its original order. The result replaces queue 1 and queue 2 becomes empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			q1, q2 := store.queues[0], store.queues[1]
			// Merge itself treats overflow as a caller bug, so the
			// size check happens here, where it is user data.
			if q1.Len()+q2.Len() > store.capacity {
				return xerrors.Errorf("can't merge queues: combined size %d exceeds the capacity %d",
					q1.Len()+q2.Len(), store.capacity)
			}
			q1.Merge(q2)
			return store.save()
		},
	}
}
