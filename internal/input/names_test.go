package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.csv")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func encode(t *testing.T, enc encoding.Encoding, text string) []byte {
	t.Helper()
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out
}

func TestSplitNames(t *testing.T) {
	got := SplitNames(" Acme , ,Ghost Corp,,  株式会社テスト ")
	expected := []string{"Acme", "Ghost Corp", "株式会社テスト"}
	if strings.Join(got, "|") != strings.Join(expected, "|") {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	if SplitNames("  ,  ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		` "C:\Users\me\companies.csv" `: `C:\Users\me\companies.csv`,
		`'/tmp/list.csv'`:               `/tmp/list.csv`,
		`/tmp/list.csv`:                 `/tmp/list.csv`,
	}
	for input, expected := range tests {
		if got := CleanPath(input); got != expected {
			t.Fatalf("CleanPath(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestReadNames(t *testing.T) {
	tests := map[string]struct {
		data     func(t *testing.T) []byte
		expected []string
	}{
		"utf-8 with bom and header": {
			data: func(t *testing.T) []byte {
				return []byte("\ufeffCompany Name,City\nAcme,Springfield\n\n  Ghost Corp ,Nowhere\n")
			},
			expected: []string{"Acme", "Ghost Corp"},
		},
		"utf-8 without header": {
			data: func(t *testing.T) []byte {
				return []byte("Acme\n\"Smith, Jones & Co\"\n")
			},
			expected: []string{"Acme", "Smith, Jones & Co"},
		},
		"shift_jis": {
			data: func(t *testing.T) []byte {
				return encode(t, japanese.ShiftJIS, "会社名\r\n株式会社テスト\r\nサンプル商事\r\n")
			},
			expected: []string{"株式会社テスト", "サンプル商事"},
		},
		"windows-1252": {
			data: func(t *testing.T) []byte {
				return encode(t, charmap.Windows1252, "Café Müller\nAcme\n")
			},
			expected: []string{"Café Müller", "Acme"},
		},
		"ragged rows": {
			data: func(t *testing.T) []byte {
				return []byte("Acme,1,2\nBeta\n,missing\nGamma,3\n")
			},
			expected: []string{"Acme", "Beta", "Gamma"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			names, err := ReadNames(writeFile(t, tt.data(t)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(names, "|") != strings.Join(tt.expected, "|") {
				t.Fatalf("expected %v, got %v", tt.expected, names)
			}
		})
	}
}

func TestReadNames_MissingFile(t *testing.T) {
	if _, err := ReadNames(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDecode_ReportsEncoding(t *testing.T) {
	_, name, err := decode(encode(t, japanese.ShiftJIS, "株式会社テスト"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "shift_jis" {
		t.Fatalf("expected shift_jis, got %s", name)
	}
}
