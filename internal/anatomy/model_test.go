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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/pqlens/internal/metasource"
)

func TestBuildModel(t *testing.T) {
	meta := &metasource.FileMeta{
		Path:       "events.parquet",
		FileSize:   4096,
		FooterSize: 300,
		Version:    2,
		CreatedBy:  "writer v1.0",
		NumRows:    30,
		KeyValue:   []metasource.KeyValuePair{{Key: "app", Value: "tests"}},
		RowGroups: []metasource.RowGroupMeta{
			{Index: 0, NumRows: 20, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 100, 400),
				chunk("name", "ZSTD", 200, 500),
			}},
			{Index: 1, NumRows: 10, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 50, 200),
				chunk("name", "ZSTD", 120, 300),
			}},
		},
	}

	m := BuildModel(meta)

	assert.Equal(t, "events.parquet", m.Overview.Path)
	assert.Equal(t, int64(4096), m.Overview.FileSize)
	assert.Equal(t, int64(300), m.Overview.FooterSize)
	assert.Equal(t, int32(2), m.Overview.Version)
	assert.Equal(t, "writer v1.0", m.Overview.CreatedBy)
	assert.Equal(t, 2, m.Overview.RowGroupCount)

	require.Len(t, m.RowGroups, 2)
	assert.Equal(t, int64(300), m.RowGroups[0].CompressedSize)
	assert.Equal(t, int64(900), m.RowGroups[0].UncompressedSize)
	assert.Equal(t, 2, m.RowGroups[0].ColumnCount)
	assert.Equal(t, int64(170), m.RowGroups[1].CompressedSize)
	assert.Equal(t, int64(500), m.RowGroups[1].UncompressedSize)

	// Row counts across groups sum to the file total.
	var rows int64
	for _, rg := range m.RowGroups {
		rows += rg.NumRows
	}
	assert.Equal(t, meta.NumRows, rows)

	assert.Equal(t, int64(470), m.TotalCompressed)
	assert.Equal(t, int64(1400), m.TotalUncompressed)
	assert.GreaterOrEqual(t, m.TotalUncompressed, m.TotalCompressed)

	require.NoError(t, m.ColumnsErr)
	require.Len(t, m.Columns, 2)
	assert.Equal(t, "id", m.Columns[0].Name)
	assert.Equal(t, int64(150), m.Columns[0].CompressedSize)
	assert.Equal(t, int64(600), m.Columns[0].UncompressedSize)
	assert.Equal(t, "name", m.Columns[1].Name)
	assert.Equal(t, int64(320), m.Columns[1].CompressedSize)
	assert.Equal(t, int64(800), m.Columns[1].UncompressedSize)

	require.Len(t, m.KeyValue, 1)
	assert.Equal(t, "app", m.KeyValue[0].Key)
}

func TestBuildModelSchemaInconsistencyDegrades(t *testing.T) {
	meta := &metasource.FileMeta{
		Path:     "odd.parquet",
		FileSize: 1024,
		NumRows:  3,
		RowGroups: []metasource.RowGroupMeta{
			{Index: 0, NumRows: 2, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 10, 20),
			}},
			{Index: 1, NumRows: 1, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 10, 20),
				chunk("extra", "ZSTD", 5, 10),
			}},
		},
	}

	m := BuildModel(meta)

	// Only the column aggregate degrades; everything else stays usable.
	assert.Nil(t, m.Columns)
	assert.ErrorIs(t, m.ColumnsErr, ErrSchemaInconsistency)
	require.Len(t, m.RowGroups, 2)
	assert.Equal(t, int64(25), m.TotalCompressed)
	assert.Equal(t, int64(50), m.TotalUncompressed)
}

func TestBuildModelEmptyFile(t *testing.T) {
	meta := &metasource.FileMeta{Path: "empty.parquet", FileSize: 200, FooterSize: 150}

	m := BuildModel(meta)

	assert.Zero(t, m.Overview.RowGroupCount)
	assert.Empty(t, m.RowGroups)
	assert.Zero(t, m.TotalCompressed)
	assert.Zero(t, m.TotalUncompressed)
	assert.Zero(t, m.Overview.PageIndexSize)
	require.NoError(t, m.ColumnsErr)
	assert.Empty(t, m.Columns)
}
