// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// Offset is the row offset of a 1-based page, pages below 1 count as the first.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return uint64(pageParam-1) * pageSize
}

// PageSize defaults non positive sizes and caps the rest.
func PageSize(sizeParam int64) uint64 {
	switch {
	case sizeParam <= 0:
		return defaultPageSize
	case uint64(sizeParam) > maxPageSize:
		return maxPageSize
	}
	return uint64(sizeParam)
}
