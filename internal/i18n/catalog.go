// Package i18n holds the user-facing message catalog of the interactive tool.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale enumerates the supported interface languages.
type Locale int

const (
	English Locale = iota
	Japanese
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// DetectLocale maps a POSIX locale value such as LANG=ja_JP.UTF-8 to a Locale,
// defaulting to English.
func DetectLocale(value string) Locale {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "c" || value == "posix" {
		return English
	}
	if strings.Contains(value, "japanese") {
		return Japanese
	}
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return Locale(index)
}

// Key identifies a message in the catalog.
type Key string

const (
	Title              Key = "title"
	Connecting         Key = "connecting"
	AuthSuccess        Key = "auth_success"
	AuthFailed         Key = "auth_failed"
	InstanceURL        Key = "instance_url"
	PromptUsername     Key = "prompt_username"
	PromptPassword     Key = "prompt_password"
	PromptClientID     Key = "prompt_client_id"
	PromptClientSecret Key = "prompt_client_secret"
	SelectSearchMode   Key = "select_search_mode"
	PartialMatch       Key = "partial_match"
	ExactMatch         Key = "exact_match"
	SelectPrompt       Key = "select_prompt"
	InvalidSelection   Key = "invalid_selection"
	SelectInputMethod  Key = "select_input_method"
	DirectInput        Key = "direct_input"
	LoadCSV            Key = "load_csv"
	EnterCompanyNames  Key = "enter_company_names"
	CompanyNamesPrompt Key = "company_names_prompt"
	EnterCSVPath       Key = "enter_csv_path"
	FilePathPrompt     Key = "file_path_prompt"
	FileNotFound       Key = "file_not_found"
	CSVReadFailed      Key = "csv_read_failed"
	NoValidNames       Key = "no_valid_names"
	SearchingFor       Key = "searching_for"
	SearchResultsFor   Key = "search_results_for"
	AccountsFound      Key = "accounts_found"
	NoCompanyInfo      Key = "no_company_info"
	SearchFailed       Key = "search_failed"
	AccountHeading     Key = "account_heading"
	AccountID          Key = "account_id"
	CompanyName        Key = "company_name"
	Address            Key = "address"
	Phone              Key = "phone"
	Website            Key = "website"
	Industry           Key = "industry"
	Employees          Key = "employees"
	Description        Key = "description"
	NoContacts         Key = "no_contacts"
	ContactsFailed     Key = "contacts_failed"
	RelatedContacts    Key = "related_contacts"
	ContactHeading     Key = "contact_heading"
	ContactID          Key = "contact_id"
	Name               Key = "name"
	ContactTitle       Key = "contact_title"
	Email              Key = "email"
	Department         Key = "department"
	NotAvailable       Key = "not_available"
	ExportToCSV        Key = "export_to_csv"
	ExportedCompanies  Key = "exported_companies"
	ExportedContacts   Key = "exported_contacts"
	ContactsSkipped    Key = "contacts_skipped"
	ExportFailed       Key = "export_failed"
	NoResults          Key = "no_results"
)

// Messages maps each key to its text per locale. Texts may contain fmt verbs.
type Messages map[Key]map[Locale]string

// Catalog resolves messages for one locale.
type Catalog struct {
	locale   Locale
	messages Messages
}

// NewCatalog builds a catalog over messages; nil selects the default table.
func NewCatalog(locale Locale, messages Messages) *Catalog {
	if messages == nil {
		messages = DefaultMessages
	}
	return &Catalog{locale: locale, messages: messages}
}

// Locale returns the catalog locale.
func (c *Catalog) Locale() Locale {
	return c.locale
}

// Msg returns the text for key, falling back to English and then to the key itself.
func (c *Catalog) Msg(key Key, args ...any) string {
	texts, ok := c.messages[key]
	if !ok {
		return string(key)
	}
	text, ok := texts[c.locale]
	if !ok {
		if text, ok = texts[English]; !ok {
			return string(key)
		}
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}
