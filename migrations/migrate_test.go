// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package migrations

import (
	"database/sql"
	"strings"
	"testing"
)

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_ContainSchemaFiles(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded migrations: %v", err)
	}

	want := map[string]bool{
		"00001_create_users.sql":         false,
		"00002_create_verifications.sql": false,
	}
	for _, e := range entries {
		if _, ok := want[e.Name()]; ok {
			want[e.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("embedded migration %q is missing", name)
		}
	}
}
