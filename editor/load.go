//go:build unix

package editor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapping is a read-only mmap of a regular file's contents, plus the
// file descriptor that must stay open for the mapping to remain
// valid. For an empty file, which cannot be mmapped, mapFile returns a
// mapping with fd < 0 and nil data, and close releases nothing.
type mapping struct {
	fd   int
	data []byte
}

func mapFile(path string) (mapping, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return mapping{}, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return mapping{}, fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return mapping{}, ErrNotRegularFile
	}

	size := st.Size
	if size == 0 {
		unix.Close(fd)
		return mapping{fd: -1}, nil
	}

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return mapping{}, fmt.Errorf("%w: mmap %s: %v", ErrIO, path, err)
	}

	return mapping{fd: fd, data: data}, nil
}

func (m mapping) close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
	}
	if m.fd >= 0 {
		if cerr := unix.Close(m.fd); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
