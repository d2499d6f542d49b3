package service

import (
	"context"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/entity"
	"github.com/octobees/leads-generator/crmlookup/internal/logger"
	"github.com/octobees/leads-generator/crmlookup/internal/textnorm"
)

// QueryClient describes the remote lookups the batch depends on.
type QueryClient interface {
	SearchOrganizations(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error)
	FetchContacts(ctx context.Context, accountID string) ([]entity.Contact, error)
}

// TermReport describes how a single search keyword was resolved.
type TermReport struct {
	Index         int
	Term          string
	Normalized    string
	Organizations []entity.Organization
	// Contacts is keyed by organization ID.
	Contacts map[string][]entity.Contact
	// SearchErr is set when the search failed and the term was treated as not found.
	SearchErr error
	// ContactErrs is keyed by organization ID; those organizations are exported without contacts.
	ContactErrs map[string]error
	Rows        []dto.FlatRow
}

// Observer receives one report per term, in input order.
type Observer interface {
	OnTermCompleted(report TermReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(report TermReport)

// OnTermCompleted implements Observer.
func (f ObserverFunc) OnTermCompleted(report TermReport) {
	f(report)
}

// BatchResult holds everything gathered by one Run.
type BatchResult struct {
	// Outcomes feed the organizations export, one per term.
	Outcomes []dto.SearchOutcome
	// Rows feed the contacts export, across all terms.
	Rows []dto.FlatRow
}

// BatchService resolves lists of company names into exportable rows.
type BatchService struct {
	client      QueryClient
	concurrency int
	log         *charmlog.Logger
}

// BatchOption configures optional behaviour.
type BatchOption func(*BatchService)

// WithConcurrency bounds how many remote calls run at once. One keeps the
// batch strictly sequential.
func WithConcurrency(n int) BatchOption {
	return func(s *BatchService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger overrides the default (discarding) logger.
func WithLogger(log *charmlog.Logger) BatchOption {
	return func(s *BatchService) {
		if log != nil {
			s.log = log
		}
	}
}

// NewBatchService creates a new instance of BatchService.
func NewBatchService(client QueryClient, opts ...BatchOption) *BatchService {
	s := &BatchService{client: client, concurrency: 1, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run searches every term and accumulates outcomes and rows in input order.
// Repeated terms are searched again. Failed calls are never retried: a failed
// search counts as no match and a failed contact lookup as no contacts, and
// the batch moves on. Blank terms are skipped.
func (s *BatchService) Run(ctx context.Context, terms []string, mode dto.SearchMode, observer Observer) BatchResult {
	kept := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			s.log.Debug("skipping blank search term")
			continue
		}
		kept = append(kept, term)
	}

	reports := make([]TermReport, len(kept))
	done := make([]chan struct{}, len(kept))
	for i := range done {
		done[i] = make(chan struct{})
	}

	go func() {
		var g errgroup.Group
		g.SetLimit(s.concurrency)
		for i, term := range kept {
			g.Go(func() error {
				reports[i] = s.lookup(ctx, i, term, mode)
				close(done[i])
				return nil
			})
		}
		_ = g.Wait()
	}()

	result := BatchResult{
		Outcomes: make([]dto.SearchOutcome, 0, len(kept)),
		Rows:     make([]dto.FlatRow, 0, len(kept)),
	}
	for i := range kept {
		<-done[i]
		report := reports[i]
		result.Outcomes = append(result.Outcomes, dto.SearchOutcome{Term: report.Term, Organizations: report.Organizations})
		result.Rows = append(result.Rows, report.Rows...)
		if observer != nil {
			observer.OnTermCompleted(report)
		}
	}
	return result
}

func (s *BatchService) lookup(ctx context.Context, index int, term string, mode dto.SearchMode) TermReport {
	report := TermReport{
		Index:         index,
		Term:          term,
		Normalized:    textnorm.Normalize(strings.TrimSpace(term)),
		Organizations: []entity.Organization{},
		Contacts:      map[string][]entity.Contact{},
		ContactErrs:   map[string]error{},
	}

	orgs, err := s.client.SearchOrganizations(ctx, report.Normalized, mode)
	if err != nil {
		s.log.Warn("search failed, treating as not found", "term", term, "mode", mode, "err", err)
		report.SearchErr = err
		report.Rows = Flatten(term, nil, nil)
		return report
	}
	if orgs != nil {
		report.Organizations = orgs
	}

	contacts := make([][]entity.Contact, len(orgs))
	errs := make([]error, len(orgs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, org := range orgs {
		g.Go(func() error {
			contacts[i], errs[i] = s.client.FetchContacts(ctx, org.ID)
			return nil
		})
	}
	_ = g.Wait()

	for i, org := range orgs {
		if errs[i] != nil {
			s.log.Warn("contact lookup failed, exporting organization without contacts", "term", term, "account_id", org.ID, "err", errs[i])
			report.ContactErrs[org.ID] = errs[i]
			continue
		}
		report.Contacts[org.ID] = contacts[i]
	}

	report.Rows = Flatten(term, report.Organizations, func(accountID string) []entity.Contact {
		return report.Contacts[accountID]
	})
	s.log.Debug("term resolved", "term", term, "organizations", len(orgs), "rows", len(report.Rows))
	return report
}
