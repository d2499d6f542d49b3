package export

import (
	"github.com/octobees/leads-generator/crmlookup/internal/dto"
)

// NotInSalesforce marks the ID column of a keyword without matches.
const NotInSalesforce = "Not in Salesforce"

var (
	companiesHeader = []string{
		"Search Keyword", "Salesforce ID", "Company Name",
		"Postal Code", "Full Address", "Phone", "Website",
		"Industry", "Number of Employees", "Description",
	}
	contactsHeader = []string{
		"Search Keyword", "Salesforce Status",
		"Account ID", "Company Name", "Company Address", "Company Phone",
		"Website", "Industry", "Number of Employees", "Description",
		"Contact ID", "Contact Name", "Title", "Contact Email",
		"Contact Phone", "Department",
	}
)

// companiesTable builds one record per (term, organization) pair plus a
// placeholder record for every term without matches.
func companiesTable(outcomes []dto.SearchOutcome, phoneRegion string) [][]string {
	records := [][]string{companiesHeader}
	for _, outcome := range outcomes {
		if !outcome.Found() {
			records = append(records, []string{outcome.Term, NotInSalesforce, "", "", "", "", "", "", "", ""})
			continue
		}
		for _, org := range outcome.Organizations {
			records = append(records, []string{
				outcome.Term,
				org.ID,
				org.Name,
				org.BillingPostalCode,
				org.StreetAddress(),
				formatPhone(org.Phone, phoneRegion),
				org.Website,
				org.Industry,
				dto.FormatEmployees(org.NumberOfEmployees),
				org.Description,
			})
		}
	}
	return records
}

// contactsTable builds one record per flattened row.
func contactsTable(rows []dto.FlatRow, phoneRegion string) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, contactsHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.Keyword,
			row.Status.Label(),
			row.AccountID,
			row.AccountName,
			row.Address,
			formatPhone(row.Phone, phoneRegion),
			row.Website,
			row.Industry,
			row.Employees,
			row.Description,
			row.ContactID,
			row.ContactName,
			row.ContactTitle,
			row.ContactEmail,
			formatPhone(row.ContactPhone, phoneRegion),
			row.ContactDepartment,
		})
	}
	return records
}

func anyContact(rows []dto.FlatRow) bool {
	for _, row := range rows {
		if row.HasContact() {
			return true
		}
	}
	return false
}
