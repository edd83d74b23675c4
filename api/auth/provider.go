package auth

import (
	"context"

	"github.com/codetrail/codetrail/config"
	"github.com/codetrail/codetrail/database"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Provider handles the OIDC handshake and session-backed authorization.
type Provider struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	config   *oauth2.Config
	cfg      *config.OIDCConfig
	db       *database.DB
}

// New creates a Provider against the configured OIDC issuer.
func New(ctx context.Context, cfg *config.OIDCConfig, db *database.DB) (*Provider, error) {
	p := Provider{
		cfg: cfg,
		db:  db,
	}
	var err error
	p.provider, err = oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	p.config = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     p.provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	p.verifier = p.provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})
	return &p, nil
}
