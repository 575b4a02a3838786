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

// Package anatomy computes the structural byte accounting of a Parquet
// file: per-row-group and per-column compressed/uncompressed totals, the
// inferred page-index region size, and file-wide statistics presence,
// assembled into an immutable model for the display layer.
package anatomy

import (
	"github.com/cardinalhq/pqlens/internal/metasource"
)

// FileOverview is the file-level summary, built once per opened file.
type FileOverview struct {
	Path          string
	FileSize      int64
	FooterSize    int64
	PageIndexSize int64 // raw inference; may be negative on unusual layouts
	NumRows       int64
	RowGroupCount int
	Version       int32
	CreatedBy     string
}

// RowGroupSummary aggregates one row group. Columns preserves the chunk
// order from the footer.
type RowGroupSummary struct {
	Index            int
	NumRows          int64
	CompressedSize   int64
	UncompressedSize int64
	ColumnCount      int
	Columns          []metasource.ColumnChunkMeta
}

// AggregatedColumn sums one logical column position across all row groups.
type AggregatedColumn struct {
	Position         int
	Name             string
	CompressedSize   int64
	UncompressedSize int64
}

// Model is the assembled structural snapshot. It exclusively owns its
// summaries, is built eagerly at open time from the metadata snapshot, and
// is never mutated afterwards; every view derives from it read-only.
type Model struct {
	Overview  FileOverview
	RowGroups []RowGroupSummary

	// Columns is the positionally aligned per-column aggregate. When the
	// row groups disagree on column count or order it is nil and
	// ColumnsErr carries ErrSchemaInconsistency; that degrades only the
	// views needing the aggregate, never the whole model.
	Columns    []AggregatedColumn
	ColumnsErr error

	Presence PresenceFlags

	TotalCompressed   int64
	TotalUncompressed int64

	KeyValue    []metasource.KeyValuePair
	ArrowFields []metasource.ArrowField

	meta *metasource.FileMeta
}

// Meta returns the underlying metadata snapshot the model was built from.
// Callers treat it as read-only.
func (m *Model) Meta() *metasource.FileMeta { return m.meta }

// BuildModel assembles the immutable structural model from a metadata
// snapshot. The size, page-index, and statistics computations are pure
// reads over the same snapshot and independent of one another.
func BuildModel(meta *metasource.FileMeta) *Model {
	m := &Model{
		Overview: FileOverview{
			Path:          meta.Path,
			FileSize:      meta.FileSize,
			FooterSize:    meta.FooterSize,
			PageIndexSize: PageIndexSize(meta),
			NumRows:       meta.NumRows,
			RowGroupCount: len(meta.RowGroups),
			Version:       meta.Version,
			CreatedBy:     meta.CreatedBy,
		},
		Presence:    CollectPresence(meta),
		KeyValue:    meta.KeyValue,
		ArrowFields: meta.ArrowFields,
		meta:        meta,
	}

	m.RowGroups = make([]RowGroupSummary, 0, len(meta.RowGroups))
	for _, rg := range meta.RowGroups {
		compressed, uncompressed := TotalSizes(rg)
		m.RowGroups = append(m.RowGroups, RowGroupSummary{
			Index:            rg.Index,
			NumRows:          rg.NumRows,
			CompressedSize:   compressed,
			UncompressedSize: uncompressed,
			ColumnCount:      len(rg.Columns),
			Columns:          rg.Columns,
		})
		m.TotalCompressed += compressed
		m.TotalUncompressed += uncompressed
	}

	m.Columns, m.ColumnsErr = aggregateColumns(meta)
	return m
}
