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

import "github.com/cardinalhq/pqlens/internal/metasource"

// PresenceFlags records, file-wide, which optional statistics and index
// structures occur anywhere in the file. A single occurrence in any column
// chunk of any row group sets the flag.
type PresenceFlags struct {
	ColumnIndex   bool
	OffsetIndex   bool
	MinMax        bool
	NullCount     bool
	DistinctCount bool
}

// Any reports whether at least one statistics flag is set. Index presence
// does not count: a file can carry page indexes yet no statistics values.
func (f PresenceFlags) Any() bool {
	return f.MinMax || f.NullCount || f.DistinctCount
}

// CollectPresence scans every column chunk of every row group and
// OR-accumulates the presence flags.
func CollectPresence(meta *metasource.FileMeta) PresenceFlags {
	var flags PresenceFlags
	for _, rg := range meta.RowGroups {
		for _, col := range rg.Columns {
			flags.ColumnIndex = flags.ColumnIndex || col.HasColumnIndex
			flags.OffsetIndex = flags.OffsetIndex || col.HasOffsetIndex
			if col.Stats != nil {
				flags.MinMax = flags.MinMax || col.Stats.HasMin || col.Stats.HasMax
				flags.NullCount = flags.NullCount || col.Stats.HasNullCount
				flags.DistinctCount = flags.DistinctCount || col.Stats.HasDistinctCount
			}
		}
	}
	return flags
}

// RowGroupStatistics pairs a row-group index with that group's statistics
// for one column. Stats is nil when the group carries none for the column.
type RowGroupStatistics struct {
	RowGroup int
	Stats    *metasource.Statistics
}

// PerColumnRecords returns the statistics for one logical column position,
// one record per row group. Statistics are deliberately never merged across
// row groups into a single value: the format defines no merge rule, so the
// per-group records are preserved as written.
func PerColumnRecords(meta *metasource.FileMeta, position int) []RowGroupStatistics {
	records := make([]RowGroupStatistics, 0, len(meta.RowGroups))
	for _, rg := range meta.RowGroups {
		rec := RowGroupStatistics{RowGroup: rg.Index}
		if position >= 0 && position < len(rg.Columns) {
			rec.Stats = rg.Columns[position].Stats
		}
		records = append(records, rec)
	}
	return records
}
