package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTable_PreservesOrder(t *testing.T) {
	t.Parallel()

	src := `
default: Unknown
products:
  - label: Zeta
    keywords: [shared]
  - label: Alpha
    keywords: [shared, other]
`
	tbl, err := ParseTable([]byte(src))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if len(tbl.Products) != 2 || tbl.Products[0].Label != "Zeta" || tbl.Products[1].Label != "Alpha" {
		t.Fatalf("unexpected order: %+v", tbl.Products)
	}
	if got := New(tbl).Classify("shared"); got != "Zeta" {
		t.Fatalf("tie should keep first product, got %q", got)
	}
}

func TestParseTable_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"missing default", "products: [{label: a, keywords: [x]}]", "default label"},
		{"no products", "default: d", "no products"},
		{"empty label", "default: d\nproducts: [{label: '', keywords: [x]}]", "no label"},
		{"duplicate label", "default: d\nproducts: [{label: a, keywords: [x]}, {label: a, keywords: [y]}]", "duplicate"},
		{"no keywords", "default: d\nproducts: [{label: a}]", "no keywords"},
		{"blank keyword", "default: d\nproducts: [{label: a, keywords: [' ']}]", "empty keyword"},
		{"bad yaml", "default: [", "decode"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTable([]byte(tc.src))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v; want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadTable_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keywords.yml")
	if err := os.WriteFile(path, []byte("default: d\nproducts:\n  - label: a\n    keywords: [x]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.Default != "d" || tbl.Products[0].Keywords[0] != "x" {
		t.Fatalf("unexpected table: %+v", tbl)
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestBuiltinTablesAreValid(t *testing.T) {
	t.Parallel()

	for name, tbl := range map[string]KeywordTable{"webhook": WebhookTable, "feed": FeedTable} {
		if err := tbl.Validate(); err != nil {
			t.Fatalf("%s table invalid: %v", name, err)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tbl, err := Resolve("", "", PresetFeed)
	if err != nil || tbl.Default != FeedTable.Default {
		t.Fatalf("fallback: got %+v, %v", tbl.Default, err)
	}
	tbl, err = Resolve(PresetWebhook, "", PresetFeed)
	if err != nil || tbl.Default != WebhookTable.Default {
		t.Fatalf("preset: got %+v, %v", tbl.Default, err)
	}
	if _, err := Resolve("bogus", "", PresetFeed); err == nil {
		t.Fatalf("expected error for unknown preset")
	}

	path := filepath.Join(t.TempDir(), "k.yml")
	if err := os.WriteFile(path, []byte("default: d\nproducts:\n  - label: a\n    keywords: [x]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err = Resolve(PresetWebhook, path, PresetFeed)
	if err != nil || tbl.Default != "d" {
		t.Fatalf("file: got %+v, %v", tbl.Default, err)
	}
}
