// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import "testing"

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "status", args: []string{"status"}},
		{name: "down to version", args: []string{"down", "3"}},
		{name: "unknown command", args: []string{"redo"}, wantErr: true},
		{name: "version on up", args: []string{"up", "3"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "not a number", args: []string{"down", "x"}, wantErr: true},
		{name: "too many", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := migrateArgs(migrateCmd, test.args)

			if (err != nil) != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}
