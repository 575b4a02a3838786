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

package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/pqlens/internal/anatomy"
	"github.com/cardinalhq/pqlens/internal/metasource"
)

func TestMetadataView(t *testing.T) {
	meta := testMeta()
	meta.KeyValue = []metasource.KeyValuePair{
		{Key: "writer.model", Value: "v1"},
	}

	mv := MetadataView(anatomy.BuildModel(meta))

	assert.Equal(t, "data.parquet", mv.Path)
	assert.Equal(t, "writer", mv.CreatedBy)
	assert.Equal(t, int32(2), mv.Version)
	assert.Equal(t, int64(10), mv.NumRows)
	assert.Equal(t, "2.00 KB (2,048 bytes)", mv.FileSize)
	assert.Equal(t, "300 bytes", mv.FooterSize)
	assert.Equal(t, "300 bytes", mv.TotalCompressed)
	assert.Equal(t, "900 bytes", mv.TotalUncompressed)
	assert.Equal(t, "66.7%", mv.Ratio)

	require.Len(t, mv.Entries, 1)
	assert.Equal(t, "writer.model", mv.Entries[0].Key)
	assert.Equal(t, "v1", mv.Entries[0].Value)
}

func TestMetadataViewTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("s", 300)
	meta := testMeta()
	meta.KeyValue = []metasource.KeyValuePair{{Key: "ARROW:schema", Value: long}}

	mv := MetadataView(anatomy.BuildModel(meta))
	require.Len(t, mv.Entries, 1)
	value := mv.Entries[0].Value
	assert.True(t, strings.HasPrefix(value, strings.Repeat("s", 100)))
	assert.True(t, strings.HasSuffix(value, "(truncated, 300 bytes total)"))
}

func TestMetadataViewNoRatioForEmptyFile(t *testing.T) {
	meta := &metasource.FileMeta{Path: "empty.parquet", FileSize: 100, FooterSize: 50}
	mv := MetadataView(anatomy.BuildModel(meta))
	assert.Empty(t, mv.Ratio)
	assert.Equal(t, "0 bytes", mv.TotalCompressed)
}
