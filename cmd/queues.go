package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/queuectl/queuectl/lib/logctx"
	"github.com/queuectl/queuectl/lib/queuefile"
	"github.com/queuectl/queuectl/lib/ringqueue"
)

// fsys is the filesystem the queue files live on. Tests swap in a memory
// filesystem.
var fsys afero.Fs = afero.NewOsFs()

// queueStore holds the two queues every command operates on, together with
// the files they were loaded from.
type queueStore struct {
	capacity int
	queues   [2]*ringqueue.Queue
	paths    [2]string
}

// loadQueueStore reads both queues from their backing files. Commands call
// this at the start of their run; there is no shared in-process queue state.
func loadQueueStore(ctx context.Context) (*queueStore, error) {
	capacity := viper.GetInt(FlagCapacity)
	if capacity < 1 {
		return nil, xerrors.Errorf("capacity should be at least 1, got %d", capacity)
	}
	store := &queueStore{
		capacity: capacity,
		paths: [2]string{
			viper.GetString(FlagQueue1File),
			viper.GetString(FlagQueue2File),
		},
	}
	logger := logctx.From(ctx)
	for i, path := range store.paths {
		q, err := queuefile.Load(fsys, path, capacity)
		if err != nil {
			return nil, xerrors.Errorf("failed to load queue %d: %w", i+1, err)
		}
		logger.Debug("Loaded queue", "queue", i+1, "file", path, "size", q.Len())
		store.queues[i] = q
	}
	return store, nil
}

// save persists both queues. Commands only call this after their mutation
// succeeded, so a failed command never changes the files.
func (s *queueStore) save() error {
	for i, path := range s.paths {
		if err := queuefile.Save(fsys, path, s.queues[i]); err != nil {
			return xerrors.Errorf("failed to save queue %d: %w", i+1, err)
		}
	}
	return nil
}

// parseQueueNumber converts a queue selector argument into an index into
// queueStore.queues.
func parseQueueNumber(arg string) (int, error) {
	switch arg {
	case "1":
		return 0, nil
	case "2":
		return 1, nil
	}
	return 0, xerrors.Errorf("queue number should be either 1 or 2, got %q", arg)
}

// parseElement accepts decimal, 0x-prefixed hex and 0-prefixed octal.
func parseElement(arg string) (uint32, error) {
	value, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, xerrors.Errorf("element should be an unsigned 32-bit integer, got %q", arg)
	}
	return uint32(value), nil
}

// formatContents renders the logical sequence as space-separated decimals.
func formatContents(q *ringqueue.Queue) string {
	parts := make([]string, q.Len())
	for i := range parts {
		parts[i] = strconv.FormatUint(uint64(q.Get(i)), 10)
	}
	return strings.Join(parts, " ")
}
