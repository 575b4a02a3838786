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

// Package view derives the display-ready records for each tab from the
// structural model: formatting, truncation, and degradation policies live
// here, never in the core accounting code.
package view

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSize renders a byte count bucketed at 1024 thresholds. Values below
// 1 KB are plain; larger values show two decimals plus the exact grouped
// byte count.
func FormatSize(n int64) string {
	const (
		kb = int64(1) << 10
		mb = int64(1) << 20
		gb = int64(1) << 30
	)
	switch {
	case n < kb:
		return fmt.Sprintf("%d bytes", n)
	case n < mb:
		return fmt.Sprintf("%.2f KB (%s bytes)", float64(n)/float64(kb), groupThousands(n))
	case n < gb:
		return fmt.Sprintf("%.2f MB (%s bytes)", float64(n)/float64(mb), groupThousands(n))
	default:
		return fmt.Sprintf("%.2f GB (%s bytes)", float64(n)/float64(gb), groupThousands(n))
	}
}

// groupThousands renders n with comma separators.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatRatio renders a compression ratio percentage with one decimal.
func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio)
}

// truncate caps s at limit runes, appending an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
