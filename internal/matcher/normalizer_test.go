package matcher

import "testing"

func TestNormalizeColumnName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"camel case", "CustomerFirstName", "customer_first_name"},
		{"lower camel case", "customerFirstName", "customer_first_name"},
		{"prefix and mixed separators", "tbl_customer-id", "customer_id"},
		{"already normalized", "customer_id", "customer_id"},
		{"spaces", "First Name", "first_name"},
		{"leading and trailing spaces", "  First Name ", "first_name"},
		{"dot separator", "email.address", "email_address"},
		{"screaming snake", "ORDER_TOTAL", "order_total"},
		{"digit before uppercase", "addr1Line", "addr1_line"},
		{"repeated separators", "customer--__id", "customer_id"},
		{"fld prefix", "fld_phone_number", "phone_number"},
		{"col suffix", "customer_col", "customer"},
		{"stacked structural prefixes", "tbl_fld_customer", "customer"},
		{"structural token alone survives", "col", "col"},
		{"structural substring not stripped", "column_total", "column_total"},
		{"typo with space", "Custmer Name", "custmer_name"},
		{"empty", "", ""},
		{"separators only", "-_ -", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeColumnName(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeColumnName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeColumnNameIdempotent(t *testing.T) {
	inputs := []string{
		"CustomerFirstName",
		"tbl_customer-id",
		"ORDER_TOTAL",
		"email.address",
		"addr1Line",
		"col",
		"tbl_fld_col",
		"",
		"  odd -- input__ ",
	}

	for _, input := range inputs {
		once := NormalizeColumnName(input)
		twice := NormalizeColumnName(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
