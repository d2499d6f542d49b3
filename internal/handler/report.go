package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/entity"
	"github.com/octobees/leads-generator/crmlookup/internal/i18n"
	"github.com/octobees/leads-generator/crmlookup/internal/service"
)

const rule = "----------------------------------------"

// ConsoleReport renders each finished term to the console.
type ConsoleReport struct {
	out     io.Writer
	catalog *i18n.Catalog
}

// NewConsoleReport creates a report writer; a nil catalog means English.
func NewConsoleReport(out io.Writer, catalog *i18n.Catalog) *ConsoleReport {
	if catalog == nil {
		catalog = i18n.NewCatalog(i18n.English, nil)
	}
	return &ConsoleReport{out: out, catalog: catalog}
}

// OnTermCompleted implements service.Observer.
func (r *ConsoleReport) OnTermCompleted(report service.TermReport) {
	msg := r.catalog.Msg
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, msg(i18n.SearchingFor, report.Term))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, msg(i18n.SearchResultsFor, report.Term))

	if report.SearchErr != nil {
		fmt.Fprintln(r.out, msg(i18n.SearchFailed, report.SearchErr))
		fmt.Fprintln(r.out, msg(i18n.NoCompanyInfo))
		return
	}
	if len(report.Organizations) == 0 {
		fmt.Fprintln(r.out, msg(i18n.NoCompanyInfo))
		return
	}

	fmt.Fprintln(r.out, msg(i18n.AccountsFound, len(report.Organizations)))
	for i, org := range report.Organizations {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, msg(i18n.AccountHeading, i+1))
		r.organization(org)
		if err, failed := report.ContactErrs[org.ID]; failed {
			fmt.Fprintln(r.out, "  "+msg(i18n.ContactsFailed, err))
			continue
		}
		r.contacts(report.Contacts[org.ID])
	}
}

func (r *ConsoleReport) organization(org entity.Organization) {
	r.field(i18n.AccountID, org.ID)
	r.field(i18n.CompanyName, org.Name)
	r.field(i18n.Address, org.FormattedAddress())
	r.field(i18n.Phone, org.Phone)
	r.field(i18n.Website, org.Website)
	r.field(i18n.Industry, org.Industry)
	r.field(i18n.Employees, dto.FormatEmployees(org.NumberOfEmployees))
	r.field(i18n.Description, truncate(org.Description, 200))
}

func (r *ConsoleReport) contacts(contacts []entity.Contact) {
	msg := r.catalog.Msg
	if len(contacts) == 0 {
		fmt.Fprintln(r.out, "  "+msg(i18n.NoContacts))
		return
	}
	fmt.Fprintln(r.out, "  "+msg(i18n.RelatedContacts, len(contacts)))
	for i, c := range contacts {
		fmt.Fprintln(r.out, "  "+msg(i18n.ContactHeading, i+1))
		r.indented(i18n.ContactID, c.ID)
		r.indented(i18n.Name, c.Name)
		r.indented(i18n.ContactTitle, c.Title)
		r.indented(i18n.Email, c.Email)
		r.indented(i18n.Phone, c.Phone)
		r.indented(i18n.Department, c.Department)
	}
}

func (r *ConsoleReport) field(label i18n.Key, value string) {
	fmt.Fprintf(r.out, "  %s: %s\n", r.catalog.Msg(label), r.orNA(value))
}

func (r *ConsoleReport) indented(label i18n.Key, value string) {
	fmt.Fprintf(r.out, "    %s: %s\n", r.catalog.Msg(label), r.orNA(value))
}

func (r *ConsoleReport) orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return r.catalog.Msg(i18n.NotAvailable)
	}
	return value
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}
