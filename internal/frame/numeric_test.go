package frame

import "testing"

func TestCleanCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "10.00", "10.00"},
		{"thousands separator", "1,234.50", "1234.50"},
		{"dollar sign", "$99", "99"},
		{"both", " $1,234.56 ", "1234.56"},
		{"text passes through", "n/a", "n/a"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanCurrency(tt.input)
			if result != tt.expected {
				t.Errorf("CleanCurrency(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"integer", "42", "42", true},
		{"decimal", "10.50", "10.5", true},
		{"negative", "-3.25", "-3.25", true},
		{"thousands separator", "1,234.50", "1234.5", true},
		{"currency symbol", "$99", "99", true},
		{"currency with trailing unit", "$1,234.56 AUD", "1234.56", true},
		{"surrounding text", "about 12 units", "12", true},
		{"empty", "", "", false},
		{"whitespace", "   ", "", false},
		{"letters only", "abc", "", false},
		{"lone period", ".", "", false},
		{"lone hyphen", "-", "", false},
		{"hyphen period", "-.", "", false},
		{"period hyphen", ".-", "", false},
		{"two numbers", "12-34", "", false},
		{"double period", "1.2.3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ToNumeric(tt.input)
			if ok != tt.ok {
				t.Fatalf("ToNumeric(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && d.String() != tt.expected {
				t.Errorf("ToNumeric(%q) = %s, want %s", tt.input, d.String(), tt.expected)
			}
		})
	}
}
