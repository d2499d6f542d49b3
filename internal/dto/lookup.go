package dto

import (
	"strconv"

	"github.com/octobees/leads-generator/crmlookup/internal/entity"
)

// SearchMode selects how a company name is matched against Account.Name.
type SearchMode int

const (
	// SearchPartial matches names containing the term.
	SearchPartial SearchMode = iota
	// SearchExact matches names equal to the term.
	SearchExact
)

// String implements fmt.Stringer.
func (m SearchMode) String() string {
	if m == SearchExact {
		return "exact"
	}
	return "partial"
}

// Status tells whether a search keyword matched any organization.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
)

// Label is the human readable status written to exports.
func (s Status) Label() string {
	if s == StatusNotFound {
		return "Not found in Salesforce"
	}
	return "Found in Salesforce"
}

// SearchOutcome pairs the original search keyword with exactly what the search returned.
type SearchOutcome struct {
	Term          string
	Organizations []entity.Organization
}

// Found reports whether the search returned at least one organization.
func (o SearchOutcome) Found() bool {
	return len(o.Organizations) > 0
}

// FlatRow is one denormalized (organization, contact) pair ready for export.
// Rows for organizations without contacts carry empty contact fields and
// NotFound rows carry only the keyword and status.
type FlatRow struct {
	Keyword string
	Status  Status

	AccountID   string
	AccountName string
	Address     string
	Phone       string
	Website     string
	Industry    string
	Employees   string
	Description string

	ContactID         string
	ContactName       string
	ContactTitle      string
	ContactEmail      string
	ContactPhone      string
	ContactDepartment string
}

// HasContact reports whether the row carries contact fields.
func (r FlatRow) HasContact() bool {
	return r.ContactID != ""
}

// NotFoundRow builds the placeholder row for a keyword without matches.
func NotFoundRow(keyword string) FlatRow {
	return FlatRow{Keyword: keyword, Status: StatusNotFound}
}

// OrganizationRow builds a row with organization fields and empty contact fields.
func OrganizationRow(keyword string, org entity.Organization) FlatRow {
	return FlatRow{
		Keyword:     keyword,
		Status:      StatusFound,
		AccountID:   org.ID,
		AccountName: org.Name,
		Address:     org.FormattedAddress(),
		Phone:       org.Phone,
		Website:     org.Website,
		Industry:    org.Industry,
		Employees:   FormatEmployees(org.NumberOfEmployees),
		Description: org.Description,
	}
}

// WithContact returns a copy of the row joined with the given contact.
func (r FlatRow) WithContact(contact entity.Contact) FlatRow {
	r.ContactID = contact.ID
	r.ContactName = contact.Name
	r.ContactTitle = contact.Title
	r.ContactEmail = contact.Email
	r.ContactPhone = contact.Phone
	r.ContactDepartment = contact.Department
	return r
}

// FormatEmployees renders an optional employee count, empty when unknown.
func FormatEmployees(count *int) string {
	if count == nil {
		return ""
	}
	return strconv.Itoa(*count)
}
