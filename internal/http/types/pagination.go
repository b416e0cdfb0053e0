// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"strconv"
)

// PageParams reads the page and size query parameters. Missing or
// malformed values come back as 0, which storage treats as its default.
func PageParams(r *http.Request) (int64, int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	return page, size
}
