package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/octobees/leads-generator/crmlookup/internal/auth"
	"github.com/octobees/leads-generator/crmlookup/internal/config"
	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/export"
	"github.com/octobees/leads-generator/crmlookup/internal/i18n"
	"github.com/octobees/leads-generator/crmlookup/internal/input"
	"github.com/octobees/leads-generator/crmlookup/internal/logger"
	"github.com/octobees/leads-generator/crmlookup/internal/prompt"
	"github.com/octobees/leads-generator/crmlookup/internal/service"
)

// ClientFactory builds the query client for an authenticated session.
type ClientFactory func(session *auth.Session) service.QueryClient

// Exporter writes the batch results to files.
type Exporter interface {
	Export(outcomes []dto.SearchOutcome, rows []dto.FlatRow) (export.Result, error)
}

// Dependencies wires the handler to its collaborators.
type Dependencies struct {
	Credentials   config.Credentials
	Authenticator auth.Authenticator
	NewClient     ClientFactory
	BatchOptions  []service.BatchOption
	Exporter      Exporter
	Prompter      prompt.Prompter
	Out           io.Writer
	Catalog       *i18n.Catalog
	Logger        *charmlog.Logger
}

// LookupHandler drives one interactive lookup session.
type LookupHandler struct {
	deps Dependencies
}

// NewLookupHandler creates a handler; a nil Logger or Catalog gets a default.
func NewLookupHandler(deps Dependencies) *LookupHandler {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	if deps.Catalog == nil {
		deps.Catalog = i18n.NewCatalog(i18n.English, nil)
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &LookupHandler{deps: deps}
}

// Run authenticates, collects the search terms, runs the batch and offers the
// export. Only authentication and prompt read failures are returned as errors;
// an invalid choice or an empty term list ends the session normally.
func (h *LookupHandler) Run(ctx context.Context) error {
	msg := h.deps.Catalog.Msg
	h.println(msg(i18n.Title))
	h.println(rule)

	creds, err := h.resolveCredentials()
	if err != nil {
		return err
	}

	h.println(msg(i18n.Connecting))
	session, err := h.deps.Authenticator.Authenticate(ctx, creds)
	if err != nil {
		h.println(msg(i18n.AuthFailed, err))
		return err
	}
	h.println(msg(i18n.AuthSuccess))
	h.println(msg(i18n.InstanceURL, session.InstanceURL))

	mode, ok, err := h.chooseMode()
	if err != nil || !ok {
		return err
	}

	terms, ok, err := h.collectTerms()
	if err != nil || !ok {
		return err
	}

	runID := uuid.NewString()
	log := h.deps.Logger.With("run_id", runID)
	log.Info("batch started", "terms", len(terms), "mode", mode)

	opts := append([]service.BatchOption{service.WithLogger(log)}, h.deps.BatchOptions...)
	batch := service.NewBatchService(h.deps.NewClient(session), opts...)
	result := batch.Run(ctx, terms, mode, NewConsoleReport(h.deps.Out, h.deps.Catalog))
	log.Info("batch finished", "outcomes", len(result.Outcomes), "rows", len(result.Rows))

	h.println()
	confirmed, err := prompt.Confirm(h.deps.Prompter, msg(i18n.ExportToCSV))
	if err != nil {
		return fmt.Errorf("read export answer: %w", err)
	}
	if confirmed {
		h.export(log, result)
	}
	return nil
}

func (h *LookupHandler) resolveCredentials() (config.Credentials, error) {
	creds := h.deps.Credentials
	fields := []struct {
		dst    *string
		label  i18n.Key
		secret bool
	}{
		{&creds.Username, i18n.PromptUsername, false},
		{&creds.Password, i18n.PromptPassword, true},
		{&creds.ClientID, i18n.PromptClientID, false},
		{&creds.ClientSecret, i18n.PromptClientSecret, true},
	}
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		ask := h.deps.Prompter.Ask
		if f.secret {
			ask = h.deps.Prompter.AskSecret
		}
		value, err := ask(h.deps.Catalog.Msg(f.label))
		if err != nil {
			return creds, fmt.Errorf("read %s: %w", f.label, err)
		}
		*f.dst = value
	}
	return creds, nil
}

func (h *LookupHandler) chooseMode() (dto.SearchMode, bool, error) {
	msg := h.deps.Catalog.Msg
	h.println()
	h.println(msg(i18n.SelectSearchMode))
	h.println(msg(i18n.PartialMatch))
	h.println(msg(i18n.ExactMatch))
	choice, err := h.deps.Prompter.Ask(msg(i18n.SelectPrompt))
	if err != nil {
		return 0, false, fmt.Errorf("read search mode: %w", err)
	}
	switch choice {
	case "1":
		return dto.SearchPartial, true, nil
	case "2":
		return dto.SearchExact, true, nil
	default:
		h.println(msg(i18n.InvalidSelection))
		return 0, false, nil
	}
}

func (h *LookupHandler) collectTerms() ([]string, bool, error) {
	msg := h.deps.Catalog.Msg
	h.println()
	h.println(msg(i18n.SelectInputMethod))
	h.println(msg(i18n.DirectInput))
	h.println(msg(i18n.LoadCSV))
	choice, err := h.deps.Prompter.Ask(msg(i18n.SelectPrompt))
	if err != nil {
		return nil, false, fmt.Errorf("read input method: %w", err)
	}

	var terms []string
	switch choice {
	case "1":
		h.println(msg(i18n.EnterCompanyNames))
		raw, err := h.deps.Prompter.Ask(msg(i18n.CompanyNamesPrompt))
		if err != nil {
			return nil, false, fmt.Errorf("read company names: %w", err)
		}
		terms = input.SplitNames(raw)
	case "2":
		h.println(msg(i18n.EnterCSVPath))
		raw, err := h.deps.Prompter.Ask(msg(i18n.FilePathPrompt))
		if err != nil {
			return nil, false, fmt.Errorf("read file path: %w", err)
		}
		path := input.CleanPath(raw)
		if _, err := os.Stat(path); err != nil {
			h.println(msg(i18n.FileNotFound, path))
			return nil, false, nil
		}
		terms, err = input.ReadNames(path)
		if err != nil {
			h.deps.Logger.Warn("reading names file failed", "path", path, "err", err)
			h.println(msg(i18n.CSVReadFailed, err))
			return nil, false, nil
		}
	default:
		h.println(msg(i18n.InvalidSelection))
		return nil, false, nil
	}

	if len(terms) == 0 {
		h.println(msg(i18n.NoValidNames))
		return nil, false, nil
	}
	return terms, true, nil
}

func (h *LookupHandler) export(log *charmlog.Logger, result service.BatchResult) {
	msg := h.deps.Catalog.Msg
	res, err := h.deps.Exporter.Export(result.Outcomes, result.Rows)
	if res.CompaniesPath != "" {
		h.println(msg(i18n.ExportedCompanies, res.CompaniesPath))
	}
	if res.ContactsPath != "" {
		h.println(msg(i18n.ExportedContacts, res.ContactsPath))
	}

	switch {
	case errors.Is(err, export.ErrNothingToExport):
		h.println(msg(i18n.NoResults))
	case err != nil:
		log.Error("export failed", "err", err)
		h.println(msg(i18n.ExportFailed, err))
	case res.ContactsSkipped:
		h.println(msg(i18n.ContactsSkipped))
	}
}

func (h *LookupHandler) println(a ...any) {
	fmt.Fprintln(h.deps.Out, a...)
}
