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

// Package tui renders the five inspection tabs in the terminal. All text
// assembly happens in pure render functions over the view models so the tab
// contents are testable without a screen; the tview shell only displays
// them and routes keys.
package tui

import (
	"fmt"
	"strings"

	"github.com/cardinalhq/pqlens/internal/anatomy/view"
)

// renderStructure draws the top-to-bottom anatomy diagram.
func renderStructure(sv view.StructureViewModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[yellow]File:[-] %s\n", sv.Path)
	fmt.Fprintf(&b, "[yellow]Size:[-] %s\n\n", sv.FileSize)

	fmt.Fprintf(&b, "[green]Header[-]\n  %s\n\n", sv.HeaderNote)

	for _, rg := range sv.RowGroups {
		fmt.Fprintf(&b, "[green]Row Group %d[-]  (%d rows, %d columns)\n", rg.Index, rg.NumRows, rg.ColumnCount)
		fmt.Fprintf(&b, "  compressed:   %s\n", rg.CompressedSize)
		fmt.Fprintf(&b, "  uncompressed: %s\n", rg.UncompressedSize)
		if rg.Ratio != "" {
			fmt.Fprintf(&b, "  saved:        %s\n", rg.Ratio)
		}
		for _, col := range rg.Columns {
			fmt.Fprintf(&b, "    %s  %s  %s\n", col.Path, col.Codec, col.CompressedSize)
		}
		if note := rg.OmittedSummary(); note != "" {
			fmt.Fprintf(&b, "    %s\n", note)
		}
		b.WriteByte('\n')
	}

	if sv.HasPageIndex {
		fmt.Fprintf(&b, "[green]Page Index[-]\n  %s\n\n", sv.PageIndexSize)
	}

	fmt.Fprintf(&b, "[green]Footer[-]\n")
	fmt.Fprintf(&b, "  rows:       %d\n", sv.FooterRows)
	fmt.Fprintf(&b, "  row groups: %d\n", sv.FooterRowGroups)
	fmt.Fprintf(&b, "  metadata:   %s\n", sv.FooterMetaSize)
	fmt.Fprintf(&b, "  trailer:    %s\n", sv.FooterTrailer)
	return b.String()
}

func renderSchema(sv view.SchemaViewModel) string {
	var b strings.Builder

	if sv.AggregationUnavailable {
		b.WriteString("[red]aggregation unavailable: row groups disagree on column layout[-]\n\n")
	}

	fmt.Fprintf(&b, "[yellow]Columns (%d)[-]\n", len(sv.Columns))
	for _, col := range sv.Columns {
		fmt.Fprintf(&b, "\n[green]%s[-]\n", col.Name)
		fmt.Fprintf(&b, "  type:       %s", col.PhysicalType)
		if col.LogicalType != "" {
			fmt.Fprintf(&b, " (%s)", col.LogicalType)
		}
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  repetition: %s\n", col.Repetition)
		fmt.Fprintf(&b, "  nulls:      %s\n", col.Nullability)
		if col.CompressedSize != "" {
			fmt.Fprintf(&b, "  compressed:   %s\n", col.CompressedSize)
			fmt.Fprintf(&b, "  uncompressed: %s\n", col.UncompressedSize)
			if col.Ratio != "" {
				fmt.Fprintf(&b, "  saved:        %s\n", col.Ratio)
			}
		}
	}

	if len(sv.ArrowFields) > 0 {
		fmt.Fprintf(&b, "\n[yellow]Arrow schema (%d fields)[-]\n", len(sv.ArrowFields))
		for _, f := range sv.ArrowFields {
			nullable := "required"
			if f.Nullable {
				nullable = "nullable"
			}
			fmt.Fprintf(&b, "  %s: %s, %s\n", f.Name, f.Type, nullable)
		}
	}
	return b.String()
}

func renderStats(sv view.StatsViewModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[yellow]Column index:[-] %s   [yellow]Offset index:[-] %s\n\n",
		yesNo(sv.HasColumnIndex), yesNo(sv.HasOffsetIndex))

	if sv.NoStatistics {
		b.WriteString("no statistics available\n")
		return b.String()
	}

	for _, col := range sv.Columns {
		fmt.Fprintf(&b, "[green]%s[-]\n", col.Name)
		for _, row := range col.Rows {
			fmt.Fprintf(&b, "  row group %d:", row.RowGroup)
			if !row.HasAny {
				b.WriteString(" no statistics\n")
				continue
			}
			if row.Min != "" {
				fmt.Fprintf(&b, " min=%s", row.Min)
			}
			if row.Max != "" {
				fmt.Fprintf(&b, " max=%s", row.Max)
			}
			if row.NullCount != "" {
				fmt.Fprintf(&b, " nulls=%s", row.NullCount)
			}
			if row.DistinctCount != "" {
				fmt.Fprintf(&b, " distinct=%s", row.DistinctCount)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderData(pv view.DataPreviewViewModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[yellow]Showing %d of %d rows[-]\n\n", pv.Shown, pv.Total)
	b.WriteString(strings.Join(pv.Columns, " | "))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(strings.Join(pv.Columns, " | "))))
	b.WriteByte('\n')
	for _, row := range pv.Rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderMetadata(mv view.MetadataViewModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[yellow]File:[-]    %s\n", mv.Path)
	fmt.Fprintf(&b, "[yellow]Creator:[-] %s\n", mv.CreatedBy)
	fmt.Fprintf(&b, "[yellow]Version:[-] %d\n", mv.Version)
	fmt.Fprintf(&b, "[yellow]Rows:[-]    %d\n\n", mv.NumRows)

	fmt.Fprintf(&b, "file size:          %s\n", mv.FileSize)
	fmt.Fprintf(&b, "footer metadata:    %s\n", mv.FooterSize)
	fmt.Fprintf(&b, "total compressed:   %s\n", mv.TotalCompressed)
	fmt.Fprintf(&b, "total uncompressed: %s\n", mv.TotalUncompressed)
	if mv.Ratio != "" {
		fmt.Fprintf(&b, "space saved:        %s\n", mv.Ratio)
	}

	if len(mv.Entries) > 0 {
		b.WriteString("\n[yellow]Key/value metadata[-]\n")
		for _, e := range mv.Entries {
			fmt.Fprintf(&b, "  %s = %s\n", e.Key, e.Value)
		}
	}
	return b.String()
}

// renderError frames a tab-local failure; the session continues.
func renderError(tab string, err error) string {
	return fmt.Sprintf("[red]%s unavailable: %v[-]\n", tab, err)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
