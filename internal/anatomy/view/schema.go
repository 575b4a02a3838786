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
	"github.com/cardinalhq/pqlens/internal/anatomy"
	"github.com/cardinalhq/pqlens/internal/metasource"
)

// SchemaColumn is one column entry in the schema listing.
type SchemaColumn struct {
	Name         string
	PhysicalType string
	LogicalType  string // empty when the column carries none
	Repetition   string // "not repeated" or "repeated"
	Nullability  string // "required - no nulls" or "optional - nullable"

	CompressedSize   string
	UncompressedSize string
	Ratio            string // empty when undefined
}

// ArrowFieldLine is one field of the Arrow-equivalent schema listing.
type ArrowFieldLine struct {
	Name     string
	Type     string
	Nullable bool
}

// SchemaViewModel lists the Parquet columns with their aggregated sizes,
// alongside the Arrow-equivalent field listing.
type SchemaViewModel struct {
	Columns []SchemaColumn

	// AggregationUnavailable is set when row groups disagree on column
	// layout; Columns then describes the first row group without the
	// cross-group size aggregate.
	AggregationUnavailable bool

	ArrowFields []ArrowFieldLine
}

// SchemaView derives the schema listing. Type, level, and codec details come
// from the first row group's chunks; sizes come from the cross-row-group
// aggregate when the schema is stable.
func SchemaView(m *anatomy.Model) SchemaViewModel {
	sv := SchemaViewModel{
		AggregationUnavailable: m.ColumnsErr != nil,
	}

	var first []metasource.ColumnChunkMeta
	if len(m.RowGroups) > 0 {
		first = m.RowGroups[0].Columns
	}

	sv.Columns = make([]SchemaColumn, 0, len(first))
	for j, col := range first {
		entry := SchemaColumn{
			Name:         col.Path,
			PhysicalType: col.PhysicalType,
			LogicalType:  col.LogicalType,
			Repetition:   repetitionLabel(col.MaxRepetitionLevel),
			Nullability:  nullabilityLabel(col.MaxDefinitionLevel),
		}
		if !sv.AggregationUnavailable && j < len(m.Columns) {
			agg := m.Columns[j]
			entry.CompressedSize = FormatSize(agg.CompressedSize)
			entry.UncompressedSize = FormatSize(agg.UncompressedSize)
			if ratio, ok := anatomy.CompressionRatio(agg.CompressedSize, agg.UncompressedSize); ok {
				entry.Ratio = formatRatio(ratio)
			}
		}
		sv.Columns = append(sv.Columns, entry)
	}

	sv.ArrowFields = make([]ArrowFieldLine, 0, len(m.ArrowFields))
	for _, f := range m.ArrowFields {
		sv.ArrowFields = append(sv.ArrowFields, ArrowFieldLine{
			Name:     f.Name,
			Type:     f.Type,
			Nullable: f.Nullable,
		})
	}
	return sv
}

func repetitionLabel(maxRepetitionLevel int) string {
	if maxRepetitionLevel == 0 {
		return "not repeated"
	}
	return "repeated"
}

func nullabilityLabel(maxDefinitionLevel int) string {
	if maxDefinitionLevel == 0 {
		return "required - no nulls"
	}
	return "optional - nullable"
}
