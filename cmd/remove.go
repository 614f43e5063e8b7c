package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func createRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <queue> <element>",
		Short: "Remove the first occurrence of an element from a queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseQueueNumber(args[0])
			if err != nil {
				return err
			}
			element, err := parseElement(args[1])
			if err != nil {
				return err
			}
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			index, ok := store.queues[n].Find(element)
			if !ok {
				return xerrors.Errorf("can't find %d in queue %s", element, args[0])
			}
			store.queues[n].RemoveAt(index)
			return store.save()
		},
	}
}
