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

// kvValueCap bounds displayed key/value metadata values; longer values are
// annotated with their full byte length.
const kvValueCap = 100

// MetadataEntry is one file-level key/value pair, value possibly truncated.
type MetadataEntry struct {
	Key   string
	Value string
}

// MetadataViewModel is the metadata tab content.
type MetadataViewModel struct {
	Path      string
	CreatedBy string
	Version   int32
	NumRows   int64

	FileSize          string
	FooterSize        string
	TotalCompressed   string
	TotalUncompressed string
	Ratio             string // empty when undefined

	Entries []MetadataEntry
}

// MetadataView derives the file-level descriptor tab. Key/value values
// beyond the display cap are cut and annotated with the original byte size.
func MetadataView(m *anatomy.Model) MetadataViewModel {
	mv := MetadataViewModel{
		Path:      m.Overview.Path,
		CreatedBy: m.Overview.CreatedBy,
		Version:   m.Overview.Version,
		NumRows:   m.Overview.NumRows,

		FileSize:          FormatSize(m.Overview.FileSize),
		FooterSize:        FormatSize(m.Overview.FooterSize),
		TotalCompressed:   FormatSize(m.TotalCompressed),
		TotalUncompressed: FormatSize(m.TotalUncompressed),
	}
	if ratio, ok := anatomy.CompressionRatio(m.TotalCompressed, m.TotalUncompressed); ok {
		mv.Ratio = formatRatio(ratio)
	}

	mv.Entries = make([]MetadataEntry, 0, len(m.KeyValue))
	for _, kv := range m.KeyValue {
		value := kv.Value
		if len(value) > kvValueCap {
			value = fmt.Sprintf("%s (truncated, %d bytes total)", value[:kvValueCap], len(kv.Value))
		}
		mv.Entries = append(mv.Entries, MetadataEntry{Key: kv.Key, Value: value})
	}
	return mv
}
