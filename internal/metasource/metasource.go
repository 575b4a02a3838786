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

// Package metasource opens a Parquet byte stream (local file or fetched
// object), validates its framing, and adapts the footer metadata into an
// explicit typed snapshot. All library-specific accessors are confined to
// this package; everything downstream consumes the FileMeta structures.
package metasource

// Statistics holds the optional per-chunk statistics. Absence of a value is
// distinct from a zero value: each optional field is gated by its presence
// flag, mirroring the optionality of the underlying thrift fields.
type Statistics struct {
	NumValues int64

	Min    string
	Max    string
	HasMin bool
	HasMax bool

	NullCount    int64
	HasNullCount bool

	DistinctCount    int64
	HasDistinctCount bool
}

// ColumnChunkMeta describes one column chunk within one row group.
type ColumnChunkMeta struct {
	Path         string
	PhysicalType string
	LogicalType  string // empty when the column carries no logical annotation
	Codec        string

	CompressedSize   int64
	UncompressedSize int64
	NumValues        int64

	// DataPageOffset is the absolute file offset of the first data page.
	DataPageOffset int64

	MaxRepetitionLevel int
	MaxDefinitionLevel int

	HasColumnIndex bool
	HasOffsetIndex bool

	Stats *Statistics // nil when the chunk carries no statistics at all
}

// RowGroupMeta describes one row group.
type RowGroupMeta struct {
	Index         int
	NumRows       int64
	TotalByteSize int64
	Columns       []ColumnChunkMeta
}

// ArrowField is one field of the Arrow-equivalent schema.
type ArrowField struct {
	Name     string
	Type     string
	Nullable bool
}

// KeyValuePair is one file-level key/value metadata entry.
type KeyValuePair struct {
	Key   string
	Value string
}

// FileMeta is the immutable typed snapshot of everything the footer says
// about a file. It is built once at open time and never mutated; recomputing
// it means re-opening the file.
type FileMeta struct {
	Path       string
	FileSize   int64
	FooterSize int64 // serialized footer metadata, excluding length field and magic

	Version   int32
	CreatedBy string
	NumRows   int64

	KeyValue    []KeyValuePair
	RowGroups   []RowGroupMeta
	ArrowFields []ArrowField
}

// UncompressedName is the codec sentinel for chunks stored without
// compression.
const UncompressedName = "UNCOMPRESSED"
