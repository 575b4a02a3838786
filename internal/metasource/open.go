// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package metasource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	"github.com/parquet-go/parquet-go"
)

var (
	// ErrNotFound means the path did not resolve to a readable stream.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidFormat means the stream is not a valid Parquet file: wrong
	// magic marker, truncated trailer, or an unparseable footer. This is a
	// deterministic property of the bytes, not a transient I/O failure.
	ErrInvalidFormat = errors.New("not a valid parquet file")
)

const (
	magic = "PAR1"

	// trailerSize covers the 4-byte footer-length field plus the 4-byte
	// trailing magic marker.
	trailerSize = 8
)

// FileHandle is an opened Parquet stream plus its typed metadata snapshot.
// The snapshot is read-only; the handle itself is only needed again for the
// bounded data preview and for Close.
type FileHandle struct {
	meta   *FileMeta
	pf     *parquet.File
	closer io.Closer
}

// Meta returns the typed metadata snapshot.
func (h *FileHandle) Meta() *FileMeta { return h.meta }

// Close releases the underlying stream, if it owns one.
func (h *FileHandle) Close() error {
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}

// OpenLocal opens a Parquet file on the local filesystem.
func OpenLocal(path string) (*FileHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	h, err := open(path, f, stat.Size(), f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return h, nil
}

// OpenBytes opens a Parquet stream already held in memory, as produced by a
// remote object fetch. The name is used only for messages and display.
func OpenBytes(name string, data []byte) (*FileHandle, error) {
	return open(name, bytes.NewReader(data), int64(len(data)), nil)
}

func open(name string, r io.ReaderAt, size int64, closer io.Closer) (*FileHandle, error) {
	footerSize, err := readTrailer(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}

	pf, err := parquet.OpenFile(r, size,
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}

	ardr, err := pqfile.NewParquetReader(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}

	meta, err := buildFileMeta(name, size, footerSize, pf.Metadata(), ardr)
	if err != nil {
		return nil, fmt.Errorf("failed to adapt metadata for %s: %w", name, err)
	}

	return &FileHandle{meta: meta, pf: pf, closer: closer}, nil
}

// readTrailer validates the fixed framing and returns the serialized footer
// size taken from the 4-byte length field: leading magic, then data, then
// footer, then the little-endian footer length and the trailing magic.
func readTrailer(r io.ReaderAt, size int64) (int64, error) {
	if size < int64(len(magic))+trailerSize {
		return 0, fmt.Errorf("file is only %d bytes", size)
	}

	head := make([]byte, len(magic))
	if _, err := r.ReadAt(head, 0); err != nil {
		return 0, fmt.Errorf("failed to read leading magic: %w", err)
	}
	if string(head) != magic {
		return 0, fmt.Errorf("bad leading magic %q", head)
	}

	tail := make([]byte, trailerSize)
	if _, err := r.ReadAt(tail, size-trailerSize); err != nil {
		return 0, fmt.Errorf("failed to read trailer: %w", err)
	}
	if string(tail[4:]) != magic {
		return 0, fmt.Errorf("bad trailing magic %q", tail[4:])
	}

	footerSize := int64(binary.LittleEndian.Uint32(tail[:4]))
	if footerSize <= 0 || size-trailerSize-footerSize < int64(len(magic)) {
		return 0, fmt.Errorf("footer length %d does not fit in a %d byte file", footerSize, size)
	}
	return footerSize, nil
}
