// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type SenderInterface interface {
	// Send returns the provider message id.
	Send(ctx context.Context, msg Message) (string, error)
}
