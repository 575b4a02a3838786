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

	"github.com/cardinalhq/pqlens/internal/anatomy"
)

// ColumnDisplayCap bounds how many columns a row-group panel enumerates;
// wider schemas summarize the excess as a count so render cost stays fixed
// regardless of schema width.
const ColumnDisplayCap = 20

// ColumnLine is one enumerated column within a row-group panel.
type ColumnLine struct {
	Path           string
	Codec          string
	CompressedSize string
}

// RowGroupPanel is one row group in the structure diagram.
type RowGroupPanel struct {
	Index            int
	NumRows          int64
	CompressedSize   string
	UncompressedSize string
	Ratio            string // empty when undefined
	ColumnCount      int
	Columns          []ColumnLine
	OmittedColumns   int // columns beyond the display cap
}

// StructureViewModel lays out the file anatomy top to bottom: file info,
// the 4-byte header magic, one panel per row group, the inferred page-index
// region when evidence supports it, and the footer.
type StructureViewModel struct {
	Path       string
	FileSize   string
	HeaderNote string

	RowGroups []RowGroupPanel

	HasPageIndex  bool
	PageIndexSize string

	FooterRows      int64
	FooterRowGroups int
	FooterMetaSize  string
	FooterTrailer   string
	FooterCreatedBy string
	FooterVersion   int32
}

// StructureView builds the structure diagram records from the model. The
// page-index panel appears only when the inferred size is positive and at
// least one index kind is present somewhere in the file; a negative inferred
// size is treated as unknown and hidden.
func StructureView(m *anatomy.Model) StructureViewModel {
	sv := StructureViewModel{
		Path:       m.Overview.Path,
		FileSize:   FormatSize(m.Overview.FileSize),
		HeaderNote: "PAR1 magic (4 bytes)",

		FooterRows:      m.Overview.NumRows,
		FooterRowGroups: m.Overview.RowGroupCount,
		FooterMetaSize:  FormatSize(m.Overview.FooterSize),
		FooterTrailer:   "footer length (4 bytes) + PAR1 magic (4 bytes)",
		FooterCreatedBy: m.Overview.CreatedBy,
		FooterVersion:   m.Overview.Version,
	}

	if m.Overview.PageIndexSize > 0 && (m.Presence.ColumnIndex || m.Presence.OffsetIndex) {
		sv.HasPageIndex = true
		sv.PageIndexSize = FormatSize(m.Overview.PageIndexSize)
	}

	sv.RowGroups = make([]RowGroupPanel, 0, len(m.RowGroups))
	for _, rg := range m.RowGroups {
		panel := RowGroupPanel{
			Index:            rg.Index,
			NumRows:          rg.NumRows,
			CompressedSize:   FormatSize(rg.CompressedSize),
			UncompressedSize: FormatSize(rg.UncompressedSize),
			ColumnCount:      rg.ColumnCount,
		}
		if ratio, ok := anatomy.CompressionRatio(rg.CompressedSize, rg.UncompressedSize); ok {
			panel.Ratio = formatRatio(ratio)
		}

		shown := rg.Columns
		if len(shown) > ColumnDisplayCap {
			panel.OmittedColumns = len(shown) - ColumnDisplayCap
			shown = shown[:ColumnDisplayCap]
		}
		panel.Columns = make([]ColumnLine, 0, len(shown))
		for _, col := range shown {
			panel.Columns = append(panel.Columns, ColumnLine{
				Path:           col.Path,
				Codec:          col.Codec,
				CompressedSize: FormatSize(col.CompressedSize),
			})
		}
		sv.RowGroups = append(sv.RowGroups, panel)
	}
	return sv
}

// OmittedSummary renders the beyond-cap note for a panel, empty when every
// column is enumerated.
func (p RowGroupPanel) OmittedSummary() string {
	if p.OmittedColumns == 0 {
		return ""
	}
	return fmt.Sprintf("… and %d more columns", p.OmittedColumns)
}
