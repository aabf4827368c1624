//go:build unix

package editor

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/oligo/pted/buffer"
)

// saveFile writes pt's current content to path. The data is first
// written to a sibling temp file and then atomically moved into place
// with rename(2), so a crash or power loss mid-write never leaves
// path truncated or half-written (original_source/editor.c's
// editor_save, same strategy).
func saveFile(path string, pt *buffer.PieceTable) error {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+base+".tmp")

	fd, err := unix.Open(tmpPath, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrIO, tmpPath, err)
	}
	defer unix.Close(fd)

	size := pt.Size()
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return fmt.Errorf("%w: truncate %s: %v", ErrIO, tmpPath, err)
	}

	if size > 0 {
		buf, err := unix.Mmap(fd, 0, size, unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			return fmt.Errorf("%w: mmap %s: %v", ErrIO, tmpPath, err)
		}

		dst := buf
		writeErr := pt.Iterate(0, func(b []byte) bool {
			n := copy(dst, b)
			dst = dst[n:]
			return true
		})

		if uerr := unix.Munmap(buf); uerr != nil && writeErr == nil {
			writeErr = uerr
		}
		if writeErr != nil {
			return fmt.Errorf("%w: write %s: %v", ErrIO, tmpPath, writeErr)
		}
	}

	if err := unix.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %v", ErrIO, tmpPath, path, err)
	}

	return nil
}
