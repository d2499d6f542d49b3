package export

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// formatPhone renders raw in E.164 when it parses as a valid number for
// region. Anything else, including an empty region, is returned trimmed but
// otherwise untouched so no data is lost in the export.
func formatPhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || region == "" {
		return raw
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return raw
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
