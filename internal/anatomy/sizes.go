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

package anatomy

import (
	"errors"
	"fmt"

	"github.com/cardinalhq/pqlens/internal/metasource"
)

// ErrSchemaInconsistency means the row groups disagree on column count or
// order, so a positionally aligned aggregate cannot be computed. It is fatal
// for that aggregate only, never for the whole session.
var ErrSchemaInconsistency = errors.New("row groups disagree on column count or order")

// TotalSizes sums the compressed and uncompressed sizes over all column
// chunks of a row group. A row group with zero columns yields (0, 0).
func TotalSizes(rg metasource.RowGroupMeta) (compressed, uncompressed int64) {
	for _, col := range rg.Columns {
		compressed += col.CompressedSize
		uncompressed += col.UncompressedSize
	}
	return compressed, uncompressed
}

// HasCompression reports whether any column chunk in the row group uses a
// codec other than the uncompressed sentinel.
func HasCompression(rg metasource.RowGroupMeta) bool {
	for _, col := range rg.Columns {
		if col.Codec != metasource.UncompressedName {
			return true
		}
	}
	return false
}

// CompressionRatio returns the space saving as a percentage,
// (1 - compressed/uncompressed) * 100. ok is false when uncompressed is
// zero; callers must omit the ratio rather than divide.
func CompressionRatio(compressed, uncompressed int64) (ratio float64, ok bool) {
	if uncompressed == 0 {
		return 0, false
	}
	return (1 - float64(compressed)/float64(uncompressed)) * 100, true
}

// ColumnTotals sums the chunk sizes at one logical column position across
// every row group. It requires schema stability: every row group must expose
// the same column count and ordering. On violation it fails with
// ErrSchemaInconsistency instead of producing a silently wrong aggregate.
func ColumnTotals(meta *metasource.FileMeta, position int) (compressed, uncompressed int64, err error) {
	if err := checkSchemaStability(meta); err != nil {
		return 0, 0, err
	}
	if len(meta.RowGroups) == 0 {
		return 0, 0, fmt.Errorf("no row groups")
	}
	if position < 0 || position >= len(meta.RowGroups[0].Columns) {
		return 0, 0, fmt.Errorf("column position %d out of range", position)
	}
	for _, rg := range meta.RowGroups {
		compressed += rg.Columns[position].CompressedSize
		uncompressed += rg.Columns[position].UncompressedSize
	}
	return compressed, uncompressed, nil
}

// checkSchemaStability verifies that all row groups agree on column count
// and column order.
func checkSchemaStability(meta *metasource.FileMeta) error {
	if len(meta.RowGroups) == 0 {
		return nil
	}
	first := meta.RowGroups[0].Columns
	for _, rg := range meta.RowGroups[1:] {
		if len(rg.Columns) != len(first) {
			return fmt.Errorf("%w: row group %d has %d columns, row group 0 has %d",
				ErrSchemaInconsistency, rg.Index, len(rg.Columns), len(first))
		}
		for j := range rg.Columns {
			if rg.Columns[j].Path != first[j].Path {
				return fmt.Errorf("%w: row group %d column %d is %q, row group 0 has %q",
					ErrSchemaInconsistency, rg.Index, j, rg.Columns[j].Path, first[j].Path)
			}
		}
	}
	return nil
}

// aggregateColumns builds the per-position aggregate over all row groups.
func aggregateColumns(meta *metasource.FileMeta) ([]AggregatedColumn, error) {
	if err := checkSchemaStability(meta); err != nil {
		return nil, err
	}
	if len(meta.RowGroups) == 0 {
		return nil, nil
	}

	first := meta.RowGroups[0].Columns
	cols := make([]AggregatedColumn, len(first))
	for j := range first {
		cols[j] = AggregatedColumn{Position: j, Name: first[j].Path}
	}
	for _, rg := range meta.RowGroups {
		for j, col := range rg.Columns {
			cols[j].CompressedSize += col.CompressedSize
			cols[j].UncompressedSize += col.UncompressedSize
		}
	}
	return cols, nil
}
