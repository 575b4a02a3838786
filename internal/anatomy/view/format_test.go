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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{500, "500 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.00 KB (1,024 bytes)"},
		{2048, "2.00 KB (2,048 bytes)"},
		{5 * 1024 * 1024, "5.00 MB (5,242,880 bytes)"},
		{3 * 1024 * 1024 * 1024, "3.00 GB (3,221,225,472 bytes)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.n), "n=%d", tt.n)
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "5", groupThousands(5))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
	assert.Equal(t, "-1,024", groupThousands(-1024))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	long := "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeeX"
	got := truncate(long, 50)
	assert.Equal(t, long[:50]+"…", got)
}
