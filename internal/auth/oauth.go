package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/octobees/leads-generator/crmlookup/internal/config"
)

// Session is the credential/endpoint pair the query client needs.
type Session struct {
	AccessToken string
	InstanceURL string
	// Client injects the bearer token into every request.
	Client *http.Client
}

// AuthError reports a failed credential exchange.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token request failed: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("token request failed: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Authenticator exchanges credentials for a Session.
type Authenticator interface {
	Authenticate(ctx context.Context, creds config.Credentials) (*Session, error)
}

// PasswordAuthenticator performs the OAuth2 resource-owner password credentials grant.
type PasswordAuthenticator struct {
	tokenURL string
	client   *http.Client
}

// NewPasswordAuthenticator builds an authenticator posting to tokenURL. The
// given client is used both for the token exchange and as the base of the
// session client, so its transport middleware applies to every API call.
func NewPasswordAuthenticator(tokenURL string, client *http.Client) *PasswordAuthenticator {
	if client == nil {
		client = http.DefaultClient
	}
	return &PasswordAuthenticator{tokenURL: tokenURL, client: client}
}

// Authenticate requests an access token. The token is not refreshed.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, creds config.Credentials) (*Session, error) {
	if missing := creds.Missing(); len(missing) > 0 {
		return nil, &AuthError{Err: fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))}
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  a.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client)
	token, err := conf.PasswordCredentialsToken(ctx, creds.Username, creds.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &AuthError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       strings.TrimSpace(string(retrieveErr.Body)),
				Err:        err,
			}
		}
		return nil, &AuthError{Err: err}
	}

	instanceURL, _ := token.Extra("instance_url").(string)
	instanceURL = strings.TrimRight(strings.TrimSpace(instanceURL), "/")
	if instanceURL == "" {
		return nil, &AuthError{Err: errors.New("token response did not include instance_url")}
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	client.Timeout = a.client.Timeout

	return &Session{
		AccessToken: token.AccessToken,
		InstanceURL: instanceURL,
		Client:      client,
	}, nil
}

var _ Authenticator = (*PasswordAuthenticator)(nil)
