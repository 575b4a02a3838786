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
	"strconv"

	"github.com/cardinalhq/pqlens/internal/anatomy"
)

// StatsRow is one row group's statistics for one column. Optional fields
// render empty when absent; absence is never shown as zero.
type StatsRow struct {
	RowGroup      int
	NumValues     string
	Min           string
	Max           string
	NullCount     string
	DistinctCount string
	HasAny        bool
}

// ColumnStats groups the per-row-group rows for one column.
type ColumnStats struct {
	Name string
	Rows []StatsRow
}

// StatsViewModel is the statistics tab content. NoStatistics is set when no
// statistics value occurs anywhere in the file; the tab then shows a single
// marker instead of zero-filled rows.
type StatsViewModel struct {
	NoStatistics bool
	Columns      []ColumnStats

	HasColumnIndex bool
	HasOffsetIndex bool
}

// StatsView derives the per-column, per-row-group statistics records.
// Statistics are kept per row group; no cross-group min/max reduction is
// performed because the format defines no merge rule.
func StatsView(m *anatomy.Model) StatsViewModel {
	sv := StatsViewModel{
		HasColumnIndex: m.Presence.ColumnIndex,
		HasOffsetIndex: m.Presence.OffsetIndex,
	}
	if !m.Presence.Any() {
		sv.NoStatistics = true
		return sv
	}

	var names []string
	if len(m.RowGroups) > 0 {
		for _, col := range m.RowGroups[0].Columns {
			names = append(names, col.Path)
		}
	}

	sv.Columns = make([]ColumnStats, 0, len(names))
	for pos, name := range names {
		cs := ColumnStats{Name: name}
		for _, rec := range anatomy.PerColumnRecords(m.Meta(), pos) {
			row := StatsRow{RowGroup: rec.RowGroup}
			if st := rec.Stats; st != nil {
				row.NumValues = strconv.FormatInt(st.NumValues, 10)
				if st.HasMin {
					row.Min = truncate(st.Min, statValueCap)
					row.HasAny = true
				}
				if st.HasMax {
					row.Max = truncate(st.Max, statValueCap)
					row.HasAny = true
				}
				if st.HasNullCount {
					row.NullCount = strconv.FormatInt(st.NullCount, 10)
					row.HasAny = true
				}
				if st.HasDistinctCount {
					row.DistinctCount = strconv.FormatInt(st.DistinctCount, 10)
					row.HasAny = true
				}
			}
			cs.Rows = append(cs.Rows, row)
		}
		sv.Columns = append(sv.Columns, cs)
	}
	return sv
}

// statValueCap bounds displayed min/max strings.
const statValueCap = 50
