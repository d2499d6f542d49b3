package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	sq "github.com/Masterminds/squirrel"
	charmlog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/entity"
	"github.com/octobees/leads-generator/crmlookup/internal/logger"
)

var (
	accountFields = []string{
		"Id", "Name",
		"BillingStreet", "BillingCity", "BillingState", "BillingPostalCode", "BillingCountry",
		"Phone", "Website", "Description", "Industry", "NumberOfEmployees",
	}
	contactFields = []string{"Id", "Name", "Title", "Email", "Phone", "Department"}
)

// APIError reports a non-success response from the query endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("salesforce api error: status %d: %s", e.StatusCode, extractAPIError(e.Body))
}

// TransportError reports a request that never produced a usable response.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("salesforce request failed: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// SalesforceRepository runs SOQL queries against the REST query endpoint.
type SalesforceRepository struct {
	client    *resty.Client
	queryPath string
	log       *charmlog.Logger
}

// Option configures optional dependencies.
type Option func(*SalesforceRepository)

// WithLogger overrides the default (discarding) logger.
func WithLogger(log *charmlog.Logger) Option {
	return func(r *SalesforceRepository) {
		if log != nil {
			r.log = log
		}
	}
}

// NewSalesforceRepository wires a repository on top of an authenticated HTTP client.
func NewSalesforceRepository(httpClient *http.Client, instanceURL, apiVersion string, opts ...Option) *SalesforceRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	r := &SalesforceRepository{
		queryPath: fmt.Sprintf("/services/data/%s/query/", strings.Trim(apiVersion, "/")),
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.client = resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(instanceURL, "/")).
		SetHeader("Accept", "application/json").
		SetLogger(r.log)
	return r
}

// SearchOrganizations finds accounts whose name equals or contains term.
// The term is used as given; callers normalize it beforehand.
func (r *SalesforceRepository) SearchOrganizations(ctx context.Context, term string, mode dto.SearchMode) ([]entity.Organization, error) {
	var cond sq.Sqlizer = sq.Like{"Name": containsPattern(term)}
	if mode == dto.SearchExact {
		cond = sq.Eq{"Name": quote(term)}
	}

	soql, err := bind(sq.Select(accountFields...).From("Account").Where(cond))
	if err != nil {
		return nil, err
	}
	return query[entity.Organization](ctx, r, soql)
}

// FetchContacts lists the contacts attached to an account.
func (r *SalesforceRepository) FetchContacts(ctx context.Context, accountID string) ([]entity.Contact, error) {
	soql, err := bind(sq.Select(contactFields...).From("Contact").Where(sq.Eq{"AccountId": quote(accountID)}))
	if err != nil {
		return nil, err
	}
	return query[entity.Contact](ctx, r, soql)
}

type queryResponse[T any] struct {
	TotalSize int  `json:"totalSize"`
	Done      bool `json:"done"`
	Records   []T  `json:"records"`
}

// query runs soql and returns the first page of records.
func query[T any](ctx context.Context, r *SalesforceRepository, soql string) ([]T, error) {
	var result queryResponse[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("q", soql).
		SetResult(&result).
		Get(r.queryPath)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
	}

	if !result.Done {
		r.log.Warn("query has more pages; only the first page is used", "total", result.TotalSize, "returned", len(result.Records))
	}
	if result.Records == nil {
		return []T{}, nil
	}
	return result.Records, nil
}

func extractAPIError(body string) string {
	if body == "" {
		return "salesforce returned an error"
	}

	var payload []struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && len(payload) > 0 && payload[0].Message != "" {
		if payload[0].ErrorCode != "" {
			return payload[0].ErrorCode + ": " + payload[0].Message
		}
		return payload[0].Message
	}
	return body
}
