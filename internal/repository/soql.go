package repository

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// literal is an already escaped and quoted SOQL value.
type literal string

var (
	stringEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\b", `\b`,
		"\f", `\f`,
	)
	likeEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\b", `\b`,
		"\f", `\f`,
		`%`, `\%`,
		`_`, `\_`,
	)
)

// quote renders value as a SOQL string literal.
func quote(value string) literal {
	return literal("'" + stringEscaper.Replace(value) + "'")
}

// containsPattern renders a LIKE pattern matching names that contain value.
// Wildcards inside value are matched literally.
func containsPattern(value string) literal {
	return literal("'%" + likeEscaper.Replace(value) + "%'")
}

// bind replaces the placeholders produced by squirrel with the given literals.
// SOQL has no server-side parameters, so every value must pass through quote
// or containsPattern before it reaches the query text.
func bind(builder sq.SelectBuilder) (string, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("build soql: %w", err)
	}

	var (
		out  strings.Builder
		next int
	)
	for _, r := range query {
		if r != '?' {
			out.WriteRune(r)
			continue
		}
		if next >= len(args) {
			return "", fmt.Errorf("build soql: placeholder %d has no argument", next+1)
		}
		lit, ok := args[next].(literal)
		if !ok {
			return "", fmt.Errorf("build soql: argument %d is %T, not an escaped literal", next+1, args[next])
		}
		out.WriteString(string(lit))
		next++
	}
	if next != len(args) {
		return "", fmt.Errorf("build soql: %d arguments for %d placeholders", len(args), next)
	}
	return out.String(), nil
}
