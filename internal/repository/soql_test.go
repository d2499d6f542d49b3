package repository

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
)

func TestQuote(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected literal
	}{
		"plain":        {input: "Acme", expected: `'Acme'`},
		"apostrophe":   {input: "O'Reilly", expected: `'O\'Reilly'`},
		"backslash":    {input: `A\B`, expected: `'A\\B'`},
		"double quote": {input: `"Acme"`, expected: `'\"Acme\"'`},
		"newline":      {input: "a\nb", expected: `'a\nb'`},
		"wildcards":    {input: "100%_off", expected: `'100%_off'`},
		"injection":    {input: "x' OR Name != '", expected: `'x\' OR Name != \''`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := quote(tt.input); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected literal
	}{
		"plain":      {input: "Acme", expected: `'%Acme%'`},
		"wildcards":  {input: "100%_off", expected: `'%100\%\_off%'`},
		"apostrophe": {input: "Joe's", expected: `'%Joe\'s%'`},
		"backslash":  {input: `50\%`, expected: `'%50\\\%%'`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := containsPattern(tt.input); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBind(t *testing.T) {
	soql, err := bind(sq.Select("Id", "Name").From("Account").Where(sq.Eq{"Name": quote("What?")}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if soql != `SELECT Id, Name FROM Account WHERE Name = 'What?'` {
		t.Fatalf("unexpected soql: %s", soql)
	}

	soql, err = bind(sq.Select("Id").From("Account").Where(sq.Like{"Name": containsPattern("Acme")}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if soql != `SELECT Id FROM Account WHERE Name LIKE '%Acme%'` {
		t.Fatalf("unexpected soql: %s", soql)
	}
}

func TestBind_RejectsRawValues(t *testing.T) {
	_, err := bind(sq.Select("Id").From("Account").Where(sq.Eq{"Name": "raw"}))
	if err == nil || !strings.Contains(err.Error(), "not an escaped literal") {
		t.Fatalf("expected raw value to be rejected, got %v", err)
	}
}
