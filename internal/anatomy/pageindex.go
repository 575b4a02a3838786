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

// trailerBytes is the 4-byte footer-length field plus the 4-byte trailing
// magic marker.
const trailerBytes = 8

// PageIndexSize infers the byte size of the page-index region (column index
// plus offset index) from offset arithmetic: the gap between the end of the
// last column chunk's data and the start of the serialized footer.
//
// This is a structural approximation, not an index walk. It assumes the
// index region, if present, is one contiguous block directly between the
// last data page and the footer, with no trailing padding. Writers that lay
// the file out differently make the result wrong, possibly negative;
// consumers must treat a negative value as unknown rather than display it.
func PageIndexSize(meta *metasource.FileMeta) int64 {
	if len(meta.RowGroups) == 0 {
		return 0
	}
	lastRG := meta.RowGroups[len(meta.RowGroups)-1]
	if len(lastRG.Columns) == 0 {
		return 0
	}
	lastCol := lastRG.Columns[len(lastRG.Columns)-1]

	lastDataEnd := lastCol.DataPageOffset + lastCol.CompressedSize
	footerStart := meta.FileSize - meta.FooterSize - trailerBytes
	return footerStart - lastDataEnd
}
