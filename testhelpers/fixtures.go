// Package testhelpers provides shared builders for colmatch tests
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSchema returns the canonical import-schema columns used across tests
func SampleSchema() []string {
	return []string{
		"customer_id",
		"first_name",
		"last_name",
		"email_address",
		"phone_number",
		"order_total",
		"shipping_address",
	}
}

// WriteFixture writes a fixture file into dir and returns its path
func WriteFixture(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// WriteConfig writes a .colmatch.kdl file into dir and returns its path
func WriteConfig(t testing.TB, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".colmatch.kdl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
	return path
}
