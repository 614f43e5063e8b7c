package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <queue> <element>",
		Short: "Add an element to a queue",
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
			if err := store.queues[n].PushBack(element); err != nil {
				return xerrors.Errorf("can't add to queue %s: %w", args[0], err)
			}
			return store.save()
		},
	}
}
