// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import "testing"

func TestPagination(t *testing.T) {
	tests := []struct {
		name   string
		page   int64
		size   int64
		limit  uint64
		offset uint64
	}{
		{name: "defaults", page: 0, size: 0, limit: defaultPageSize, offset: 0},
		{name: "first page", page: 1, size: 20, limit: 20, offset: 0},
		{name: "third page", page: 3, size: 20, limit: 20, offset: 40},
		{name: "negative page", page: -4, size: 10, limit: 10, offset: 0},
		{name: "capped size", page: 2, size: 10000, limit: maxPageSize, offset: maxPageSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			limit := PageSize(test.size)
			if limit != test.limit {
				t.Fatalf("expected limit %d got %d", test.limit, limit)
			}

			if offset := Offset(test.page, limit); offset != test.offset {
				t.Fatalf("expected offset %d got %d", test.offset, offset)
			}
		})
	}
}
