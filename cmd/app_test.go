package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestSplitList(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"tradebook.csv", []string{"tradebook.csv"}},
		{"a.csv, b.csv", []string{"a.csv", "b.csv"}},
		{" , a.csv ,, ", []string{"a.csv"}},
	}
	for _, tc := range testCases {
		if got := splitList(tc.in); !slices.Equal(got, tc.want) {
			t.Errorf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsJSON(t *testing.T) {
	testCases := []struct {
		source  string
		content string
		want    bool
	}{
		{"tradebook.json", "whatever", true},
		{"TRADEBOOK.JSON", "whatever", true},
		{"tradebook.csv", "Symbol,Quantity,Price", false},
		{"download", ` {"data": []}`, true},
		{"download", "[{}]", true},
		{"download", "Symbol,Quantity,Price", false},
	}
	for _, tc := range testCases {
		if got := isJSON(tc.source, []byte(tc.content)); got != tc.want {
			t.Errorf("isJSON(%q, %q) = %v, want %v", tc.source, tc.content, got, tc.want)
		}
	}
}

func TestLoadAliases(t *testing.T) {
	// no aliases configured is not an error
	aliases, err := loadAliases("")
	if err != nil {
		t.Fatalf("loadAliases(\"\") failed: %v", err)
	}
	if aliases != nil {
		t.Errorf("loadAliases(\"\") = %v, want nil", aliases)
	}

	file := filepath.Join(t.TempDir(), "aliases.json")
	if err := os.WriteFile(file, []byte(`{"TCS-BE": "TCS"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	aliases, err = loadAliases(file)
	if err != nil {
		t.Fatalf("loadAliases(%q) failed: %v", file, err)
	}
	if aliases["TCS-BE"] != "TCS" {
		t.Errorf("aliases = %v, want TCS-BE mapped to TCS", aliases)
	}

	if _, err := loadAliases(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("loadAliases() on a missing file did not fail")
	}
}
