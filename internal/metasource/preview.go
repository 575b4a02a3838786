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
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// ColumnNames returns the top-level field names in schema order. These match
// the keys of the row maps returned by ReadRows.
func (h *FileHandle) ColumnNames() []string {
	fields := h.pf.Schema().Fields()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name())
	}
	return names
}

// ReadRows materializes at most max rows from the start of the file. This is
// the only operation that touches page data rather than footer metadata; its
// cost is bounded by max, not by the file's row count. A fresh reader is
// built per call, so repeated previews re-read from the underlying stream.
func (h *FileHandle) ReadRows(max int) ([]map[string]any, error) {
	if max <= 0 {
		return nil, nil
	}

	reader := parquet.NewGenericReader[map[string]any](h.pf, h.pf.Schema())
	defer func() { _ = reader.Close() }()

	out := make([]map[string]any, 0, max)
	for len(out) < max {
		batch := make([]map[string]any, max-len(out))
		for i := range batch {
			batch[i] = make(map[string]any)
		}

		n, err := reader.Read(batch)
		out = append(out, batch[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read rows from %s: %w", h.meta.Path, err)
		}
		if n == 0 {
			break
		}
	}
	return out, nil
}
