// Package queuefile loads and saves ring queues as flat binary files: the
// logical sequence serialized as native-byte-order 32-bit unsigned integers,
// no header, no framing. The format is shared with the files the queues are
// persisted to between program runs.
package queuefile

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/queuectl/queuectl/lib/ringqueue"
)

// Load reads up to capacity values from the file at path and returns a queue
// holding them in logical order. A missing file yields an empty queue, so a
// fresh working directory starts with empty queues. A file holding more than
// capacity values is truncated to the first capacity of them; a trailing
// partial record is ignored.
func Load(fsys afero.Fs, path string, capacity int) (*ringqueue.Queue, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ringqueue.New(capacity), nil
		}
		return nil, xerrors.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values := make([]uint32, 0, capacity)
	var buf [4]byte
	for len(values) < capacity {
		if _, err := io.ReadFull(f, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, xerrors.Errorf("failed to read %s: %w", path, err)
		}
		values = append(values, binary.NativeEndian.Uint32(buf[:]))
	}
	return ringqueue.FromSlice(values, capacity), nil
}

// Save writes the logical sequence of q to the file at path, replacing any
// previous contents.
func Save(fsys afero.Fs, path string, q *ringqueue.Queue) error {
	f, err := fsys.Create(path)
	if err != nil {
		return xerrors.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	var buf [4]byte
	for i := 0; i < q.Len(); i++ {
		binary.NativeEndian.PutUint32(buf[:], q.Get(i))
		if _, err := f.Write(buf[:]); err != nil {
			return xerrors.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
