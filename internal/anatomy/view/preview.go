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
	"fmt"
)

// DefaultPreviewRows caps the data preview regardless of file row count.
const DefaultPreviewRows = 50

// cellCharCap bounds each stringified cell; longer values are cut with an
// ellipsis.
const cellCharCap = 50

// NullMarker renders a null cell.
const NullMarker = "None"

// RowReader is the bounded row-data access the preview needs. Reads are
// re-executed on demand; cost is bounded by max, not by total row count.
type RowReader interface {
	ColumnNames() []string
	ReadRows(max int) ([]map[string]any, error)
}

// DataPreviewViewModel is the data tab content: column headers plus at most
// the capped number of stringified rows.
type DataPreviewViewModel struct {
	Columns []string
	Rows    [][]string
	Total   int64 // file row count, so the tab can show "N of M"
	Shown   int
}

// DataPreview materializes at most rowCap rows (DefaultPreviewRows when
// rowCap <= 0) through the reader. Nulls render as the distinguished marker
// and every cell is truncated at the character cap. A read failure is
// returned for inline display at the tab boundary, never fatal to the
// session.
func DataPreview(r RowReader, totalRows int64, rowCap int) (DataPreviewViewModel, error) {
	if rowCap <= 0 {
		rowCap = DefaultPreviewRows
	}
	pv := DataPreviewViewModel{
		Columns: r.ColumnNames(),
		Total:   totalRows,
	}

	rows, err := r.ReadRows(rowCap)
	if err != nil {
		return pv, fmt.Errorf("reading preview rows: %w", err)
	}

	pv.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(pv.Columns))
		for _, name := range pv.Columns {
			cells = append(cells, formatCell(row[name]))
		}
		pv.Rows = append(pv.Rows, cells)
	}
	pv.Shown = len(pv.Rows)
	return pv, nil
}

func formatCell(v any) string {
	if v == nil {
		return NullMarker
	}
	return truncate(fmt.Sprintf("%v", v), cellCharCap)
}
