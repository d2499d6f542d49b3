package entity

import "strings"

// NoAddress is shown when an organization carries no billing address component.
const NoAddress = "No address available"

// Organization represents a Salesforce Account returned by a name search.
type Organization struct {
	ID                string `json:"Id"`
	Name              string `json:"Name"`
	BillingStreet     string `json:"BillingStreet"`
	BillingCity       string `json:"BillingCity"`
	BillingState      string `json:"BillingState"`
	BillingPostalCode string `json:"BillingPostalCode"`
	BillingCountry    string `json:"BillingCountry"`
	Phone             string `json:"Phone"`
	Website           string `json:"Website"`
	Description       string `json:"Description"`
	Industry          string `json:"Industry"`
	NumberOfEmployees *int   `json:"NumberOfEmployees"`
}

// FormattedAddress joins postal code, country, state, city and street, skipping blanks.
func (o Organization) FormattedAddress() string {
	addr := joinNonEmpty(o.BillingPostalCode, o.BillingCountry, o.BillingState, o.BillingCity, o.BillingStreet)
	if addr == "" {
		return NoAddress
	}
	return addr
}

// StreetAddress is the address without the postal code, used where the postal code has its own column.
func (o Organization) StreetAddress() string {
	return joinNonEmpty(o.BillingCountry, o.BillingState, o.BillingCity, o.BillingStreet)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
