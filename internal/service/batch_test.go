package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/entity"
)

type mockQueryClient struct {
	search   func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error)
	contacts func(ctx context.Context, accountID string) ([]entity.Contact, error)
}

func (m *mockQueryClient) SearchOrganizations(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
	if m.search != nil {
		return m.search(ctx, term, mode)
	}
	return nil, errors.New("search not implemented")
}

func (m *mockQueryClient) FetchContacts(ctx context.Context, accountID string) ([]entity.Contact, error) {
	if m.contacts != nil {
		return m.contacts(ctx, accountID)
	}
	return nil, errors.New("contacts not implemented")
}

func acmeScenarioClient() *mockQueryClient {
	return &mockQueryClient{
		search: func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
			if term == "Acme" {
				return []entity.Organization{acme()}, nil
			}
			return []entity.Organization{}, nil
		},
		contacts: func(ctx context.Context, accountID string) ([]entity.Contact, error) {
			return []entity.Contact{
				{ID: "003A", Name: "Jane Roe", Email: "jane@acme.example"},
				{ID: "003B", Name: "John Doe", Email: "john@acme.example"},
			}, nil
		},
	}
}

func TestBatchService_Run_FoundAndNotFound(t *testing.T) {
	var reports []TermReport
	svc := NewBatchService(acmeScenarioClient())
	result := svc.Run(context.Background(), []string{"Acme", "Ghost Corp"}, dto.SearchPartial, ObserverFunc(func(r TermReport) {
		reports = append(reports, r)
	}))

	if len(result.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(result.Outcomes))
	}
	if result.Outcomes[0].Term != "Acme" || len(result.Outcomes[0].Organizations) != 1 {
		t.Fatalf("unexpected first outcome: %+v", result.Outcomes[0])
	}
	if result.Outcomes[1].Term != "Ghost Corp" || result.Outcomes[1].Found() {
		t.Fatalf("unexpected second outcome: %+v", result.Outcomes[1])
	}

	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows (2 contacts + not found), got %d", len(result.Rows))
	}
	if result.Rows[0].ContactID != "003A" || result.Rows[1].ContactID != "003B" {
		t.Fatalf("unexpected contact rows: %+v", result.Rows[:2])
	}
	if result.Rows[2].Status != dto.StatusNotFound || result.Rows[2].Keyword != "Ghost Corp" {
		t.Fatalf("unexpected not-found row: %+v", result.Rows[2])
	}

	if len(reports) != 2 || reports[0].Term != "Acme" || reports[1].Term != "Ghost Corp" {
		t.Fatalf("expected one report per term in input order, got %+v", reports)
	}
}

func TestBatchService_Run_NormalizesQueryButKeepsKeyword(t *testing.T) {
	var searched []string
	client := &mockQueryClient{
		search: func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
			searched = append(searched, term)
			if mode != dto.SearchExact {
				t.Fatalf("expected exact mode, got %s", mode)
			}
			return nil, nil
		},
	}

	result := NewBatchService(client).Run(context.Background(), []string{"ＡＣＭＥ"}, dto.SearchExact, nil)
	if len(searched) != 1 || searched[0] != "ACME" {
		t.Fatalf("expected normalized query ACME, got %v", searched)
	}
	if result.Outcomes[0].Term != "ＡＣＭＥ" || result.Rows[0].Keyword != "ＡＣＭＥ" {
		t.Fatalf("expected original keyword to be kept, got %+v / %+v", result.Outcomes[0], result.Rows[0])
	}
	if result.Outcomes[0].Organizations == nil {
		t.Fatalf("expected empty, non-nil organizations for a nil search result")
	}
}

func TestBatchService_Run_RepeatedTermsAreNotDeduplicated(t *testing.T) {
	var calls atomic.Int32
	client := acmeScenarioClient()
	search := client.search
	client.search = func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
		calls.Add(1)
		return search(ctx, term, mode)
	}

	result := NewBatchService(client).Run(context.Background(), []string{"Acme", "Acme", "  "}, dto.SearchPartial, nil)
	if calls.Load() != 2 {
		t.Fatalf("expected 2 searches, got %d", calls.Load())
	}
	if len(result.Outcomes) != 2 || len(result.Rows) != 4 {
		t.Fatalf("expected duplicated outcomes and rows, got %d outcomes / %d rows", len(result.Outcomes), len(result.Rows))
	}
}

func TestBatchService_Run_SearchFailureContinues(t *testing.T) {
	client := acmeScenarioClient()
	search := client.search
	client.search = func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
		if term == "Broken" {
			return nil, errors.New("status 500")
		}
		return search(ctx, term, mode)
	}

	var reports []TermReport
	result := NewBatchService(client).Run(context.Background(), []string{"Broken", "Acme"}, dto.SearchPartial, ObserverFunc(func(r TermReport) {
		reports = append(reports, r)
	}))

	if result.Outcomes[0].Found() || result.Rows[0].Status != dto.StatusNotFound {
		t.Fatalf("expected failed search to be treated as not found: %+v", result.Rows[0])
	}
	if reports[0].SearchErr == nil {
		t.Fatalf("expected search error to be reported")
	}
	if !result.Outcomes[1].Found() || len(result.Rows) != 3 {
		t.Fatalf("expected batch to continue after failure, got %+v", result)
	}
}

func TestBatchService_Run_ContactFailureKeepsOrganization(t *testing.T) {
	other := entity.Organization{ID: "001B", Name: "Acme Labs"}
	client := &mockQueryClient{
		search: func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
			return []entity.Organization{acme(), other}, nil
		},
		contacts: func(ctx context.Context, accountID string) ([]entity.Contact, error) {
			if accountID == "001A" {
				return nil, errors.New("status 503")
			}
			return []entity.Contact{{ID: "003Z", Name: "Zoe"}}, nil
		},
	}

	var report TermReport
	result := NewBatchService(client).Run(context.Background(), []string{"Acme"}, dto.SearchPartial, ObserverFunc(func(r TermReport) {
		report = r
	}))

	if len(result.Outcomes[0].Organizations) != 2 {
		t.Fatalf("expected both organizations in the outcome, got %+v", result.Outcomes[0])
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}
	if result.Rows[0].AccountID != "001A" || result.Rows[0].HasContact() {
		t.Fatalf("expected organization row without contact, got %+v", result.Rows[0])
	}
	if result.Rows[1].AccountID != "001B" || result.Rows[1].ContactID != "003Z" {
		t.Fatalf("unexpected second row: %+v", result.Rows[1])
	}
	if report.ContactErrs["001A"] == nil {
		t.Fatalf("expected contact error to be reported")
	}
}

func TestBatchService_Run_ConcurrentKeepsInputOrder(t *testing.T) {
	terms := make([]string, 12)
	for i := range terms {
		terms[i] = fmt.Sprintf("term-%02d", i)
	}

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)
	client := &mockQueryClient{
		search: func(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()
			defer func() {
				mu.Lock()
				inFlight--
				mu.Unlock()
			}()

			// later terms finish first
			var idx int
			fmt.Sscanf(term, "term-%d", &idx)
			time.Sleep(time.Duration(len(terms)-idx) * time.Millisecond)
			return []entity.Organization{{ID: term + "-org", Name: term}}, nil
		},
		contacts: func(ctx context.Context, accountID string) ([]entity.Contact, error) {
			return []entity.Contact{{ID: accountID + "-c1"}, {ID: accountID + "-c2"}}, nil
		},
	}

	var order []int
	result := NewBatchService(client, WithConcurrency(4)).Run(context.Background(), terms, dto.SearchPartial, ObserverFunc(func(r TermReport) {
		order = append(order, r.Index)
	}))

	for i, term := range terms {
		if result.Outcomes[i].Term != term {
			t.Fatalf("outcome %d: expected %s, got %s", i, term, result.Outcomes[i].Term)
		}
		if result.Rows[2*i].ContactID != term+"-org-c1" || result.Rows[2*i+1].ContactID != term+"-org-c2" {
			t.Fatalf("rows for %s out of order: %+v %+v", term, result.Rows[2*i], result.Rows[2*i+1])
		}
		if order[i] != i {
			t.Fatalf("observer called out of order: %v", order)
		}
	}
	if peak > 4 {
		t.Fatalf("expected at most 4 concurrent searches, got %d", peak)
	}
}
