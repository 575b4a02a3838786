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

func chunk(path string, codec string, compressed, uncompressed int64) metasource.ColumnChunkMeta {
	return metasource.ColumnChunkMeta{
		Path:             path,
		PhysicalType:     "INT64",
		Codec:            codec,
		CompressedSize:   compressed,
		UncompressedSize: uncompressed,
	}
}

func TestTotalSizes(t *testing.T) {
	rg := metasource.RowGroupMeta{
		Columns: []metasource.ColumnChunkMeta{
			chunk("a", "ZSTD", 100, 400),
			chunk("b", "ZSTD", 50, 100),
		},
	}

	compressed, uncompressed := TotalSizes(rg)
	assert.Equal(t, int64(150), compressed)
	assert.Equal(t, int64(500), uncompressed)
}

func TestTotalSizesEmptyRowGroup(t *testing.T) {
	compressed, uncompressed := TotalSizes(metasource.RowGroupMeta{})
	assert.Equal(t, int64(0), compressed)
	assert.Equal(t, int64(0), uncompressed)
}

func TestHasCompression(t *testing.T) {
	compressed := metasource.RowGroupMeta{
		Columns: []metasource.ColumnChunkMeta{
			chunk("a", "UNCOMPRESSED", 10, 10),
			chunk("b", "SNAPPY", 5, 20),
		},
	}
	assert.True(t, HasCompression(compressed))

	plain := metasource.RowGroupMeta{
		Columns: []metasource.ColumnChunkMeta{
			chunk("a", "UNCOMPRESSED", 10, 10),
			chunk("b", "UNCOMPRESSED", 20, 20),
		},
	}
	assert.False(t, HasCompression(plain))
}

func TestCompressionRatio(t *testing.T) {
	ratio, ok := CompressionRatio(25, 100)
	require.True(t, ok)
	assert.InDelta(t, 75.0, ratio, 0.001)

	ratio, ok = CompressionRatio(100, 100)
	require.True(t, ok)
	assert.InDelta(t, 0.0, ratio, 0.001)

	// Division guard: zero uncompressed size must not fault.
	_, ok = CompressionRatio(0, 0)
	assert.False(t, ok)
}

func TestColumnTotals(t *testing.T) {
	meta := &metasource.FileMeta{
		RowGroups: []metasource.RowGroupMeta{
			{Index: 0, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 10, 40),
				chunk("name", "ZSTD", 100, 250),
			}},
			{Index: 1, Columns: []metasource.ColumnChunkMeta{
				chunk("id", "ZSTD", 20, 60),
				chunk("name", "ZSTD", 150, 300),
			}},
		},
	}

	compressed, uncompressed, err := ColumnTotals(meta, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), compressed)
	assert.Equal(t, int64(100), uncompressed)

	compressed, uncompressed, err = ColumnTotals(meta, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(250), compressed)
	assert.Equal(t, int64(550), uncompressed)

	_, _, err = ColumnTotals(meta, 2)
	assert.Error(t, err)
}

func TestColumnTotalsSchemaInconsistency(t *testing.T) {
	t.Run("column count differs", func(t *testing.T) {
		meta := &metasource.FileMeta{
			RowGroups: []metasource.RowGroupMeta{
				{Index: 0, Columns: []metasource.ColumnChunkMeta{chunk("id", "ZSTD", 1, 2)}},
				{Index: 1, Columns: []metasource.ColumnChunkMeta{
					chunk("id", "ZSTD", 1, 2),
					chunk("extra", "ZSTD", 1, 2),
				}},
			},
		}
		_, _, err := ColumnTotals(meta, 0)
		assert.ErrorIs(t, err, ErrSchemaInconsistency)
	})

	t.Run("column order differs", func(t *testing.T) {
		meta := &metasource.FileMeta{
			RowGroups: []metasource.RowGroupMeta{
				{Index: 0, Columns: []metasource.ColumnChunkMeta{
					chunk("id", "ZSTD", 1, 2),
					chunk("name", "ZSTD", 1, 2),
				}},
				{Index: 1, Columns: []metasource.ColumnChunkMeta{
					chunk("name", "ZSTD", 1, 2),
					chunk("id", "ZSTD", 1, 2),
				}},
			},
		}
		_, _, err := ColumnTotals(meta, 0)
		assert.ErrorIs(t, err, ErrSchemaInconsistency)
	})
}
