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
	"fmt"
	"strings"

	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	pqmetadata "github.com/apache/arrow-go/v18/parquet/metadata"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/parquet-go/parquet-go/format"
)

// buildFileMeta adapts the two library views of the footer into one typed
// snapshot. The raw thrift mirror supplies structural facts (offsets, sizes,
// codec and type names, index locations); the arrow-go metadata supplies the
// schema descriptors and statistics with faithful optional-field presence.
func buildFileMeta(name string, size, footerSize int64, fmeta *format.FileMetaData, ardr *pqfile.Reader) (*FileMeta, error) {
	meta := &FileMeta{
		Path:       name,
		FileSize:   size,
		FooterSize: footerSize,
		Version:    fmeta.Version,
		CreatedBy:  fmeta.CreatedBy,
		NumRows:    fmeta.NumRows,
	}

	for _, kv := range fmeta.KeyValueMetadata {
		meta.KeyValue = append(meta.KeyValue, KeyValuePair{Key: kv.Key, Value: kv.Value})
	}

	armd := ardr.MetaData()
	meta.RowGroups = make([]RowGroupMeta, 0, len(fmeta.RowGroups))
	for i, rg := range fmeta.RowGroups {
		argmd := armd.RowGroup(i)
		if got := argmd.NumColumns(); got != len(rg.Columns) {
			return nil, fmt.Errorf("row group %d: footer reports %d columns, reader reports %d", i, len(rg.Columns), got)
		}

		rgMeta := RowGroupMeta{
			Index:         i,
			NumRows:       rg.NumRows,
			TotalByteSize: rg.TotalByteSize,
			Columns:       make([]ColumnChunkMeta, 0, len(rg.Columns)),
		}

		for j := range rg.Columns {
			rc := &rg.Columns[j]
			cm := &rc.MetaData

			col := ColumnChunkMeta{
				Path:             strings.Join(cm.PathInSchema, "."),
				PhysicalType:     cm.Type.String(),
				Codec:            cm.Codec.String(),
				CompressedSize:   cm.TotalCompressedSize,
				UncompressedSize: cm.TotalUncompressedSize,
				NumValues:        cm.NumValues,
				DataPageOffset:   cm.DataPageOffset,
				HasColumnIndex:   rc.ColumnIndexOffset > 0,
				HasOffsetIndex:   rc.OffsetIndexOffset > 0,
			}

			if j < armd.Schema.NumColumns() {
				descr := armd.Schema.Column(j)
				col.MaxRepetitionLevel = int(descr.MaxRepetitionLevel())
				col.MaxDefinitionLevel = int(descr.MaxDefinitionLevel())
				col.LogicalType = logicalTypeName(descr.LogicalType())
			}

			col.Stats = chunkStatistics(argmd, j, cm.NumValues)
			rgMeta.Columns = append(rgMeta.Columns, col)
		}
		meta.RowGroups = append(meta.RowGroups, rgMeta)
	}

	meta.ArrowFields = arrowFields(armd)
	return meta, nil
}

// chunkStatistics extracts the optional statistics for one chunk. A chunk
// with no statistics block at all yields nil; a statistics block with only a
// value count yields a record whose optional fields are all absent.
func chunkStatistics(argmd *pqmetadata.RowGroupMetaData, col int, numValues int64) *Statistics {
	cc, err := argmd.ColumnChunk(col)
	if err != nil {
		return nil
	}
	stats, err := cc.Statistics()
	if err != nil || stats == nil {
		return nil
	}

	rec := &Statistics{NumValues: numValues}
	if stats.HasMinMax() {
		typ := stats.Descr().PhysicalType()
		rec.HasMin = true
		rec.HasMax = true
		rec.Min = formatStatValue(pqmetadata.GetStatValue(typ, stats.EncodeMin()))
		rec.Max = formatStatValue(pqmetadata.GetStatValue(typ, stats.EncodeMax()))
	}
	if stats.HasNullCount() {
		rec.HasNullCount = true
		rec.NullCount = stats.NullCount()
	}
	if stats.HasDistinctCount() {
		rec.HasDistinctCount = true
		rec.DistinctCount = stats.DistinctCount()
	}
	return rec
}

func formatStatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func logicalTypeName(lt any) string {
	s, ok := lt.(fmt.Stringer)
	if !ok {
		return ""
	}
	name := s.String()
	if name == "" || strings.EqualFold(name, "none") {
		return ""
	}
	return name
}

func arrowFields(armd *pqmetadata.FileMetaData) []ArrowField {
	asch, err := pqarrow.FromParquet(armd.Schema, nil, armd.KeyValueMetadata())
	if err != nil {
		// The parquet column listing still covers the schema view.
		return nil
	}
	fields := make([]ArrowField, 0, asch.NumFields())
	for _, f := range asch.Fields() {
		fields = append(fields, ArrowField{Name: f.Name, Type: f.Type.String(), Nullable: f.Nullable})
	}
	return fields
}
