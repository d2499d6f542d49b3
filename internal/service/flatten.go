package service

import (
	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/entity"
)

// Flatten denormalizes one search result into export rows: a single NotFound
// row when nothing matched, otherwise one row per (organization, contact) pair
// with organizations and contacts kept in the order the search returned them.
// An organization without contacts yields one row with empty contact fields.
func Flatten(term string, organizations []entity.Organization, contactsOf func(accountID string) []entity.Contact) []dto.FlatRow {
	if len(organizations) == 0 {
		return []dto.FlatRow{dto.NotFoundRow(term)}
	}

	rows := make([]dto.FlatRow, 0, len(organizations))
	for _, org := range organizations {
		base := dto.OrganizationRow(term, org)

		var contacts []entity.Contact
		if contactsOf != nil {
			contacts = contactsOf(org.ID)
		}
		if len(contacts) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, contact := range contacts {
			rows = append(rows, base.WithContact(contact))
		}
	}
	return rows
}
