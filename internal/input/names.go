// Package input collects the company names a batch searches for.
package input

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned when no candidate encoding decodes the file cleanly.
var ErrUnsupportedEncoding = errors.New("csv encoding not supported")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// fallbackEncodings are tried in order after plain UTF-8.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{name: "shift_jis", enc: japanese.ShiftJIS},
	{name: "euc-jp", enc: japanese.EUCJP},
	{name: "windows-1252", enc: charmap.Windows1252},
}

// headerNames are first-row cells treated as a column title rather than a company.
var headerNames = map[string]struct{}{
	"company":      {},
	"company name": {},
	"company_name": {},
	"companyname":  {},
	"name":         {},
	"account":      {},
	"account name": {},
	"会社名":          {},
	"企業名":          {},
}

// SplitNames splits comma separated input into trimmed, non-empty names.
func SplitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CleanPath strips whitespace and the quotes a pasted path often carries.
func CleanPath(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"'`)
}

// ReadNames reads company names from the first column of a CSV file.
func ReadNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	text, _, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return parseNames(strings.NewReader(text))
}

// decode returns data as UTF-8 text along with the name of the encoding used.
func decode(data []byte) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(data[len(utf8BOM):]), "utf-8-sig", nil
	}
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}
	for _, candidate := range fallbackEncodings {
		decoded, _, err := transform.Bytes(candidate.enc.NewDecoder(), data)
		if err != nil || !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return string(decoded), candidate.name, nil
	}
	return "", "", ErrUnsupportedEncoding
}

func parseNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var names []string
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if first {
			first = false
			if _, isHeader := headerNames[strings.ToLower(name)]; isHeader {
				continue
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
