package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/internal/config"
	"github.com/noelwild/Watchtower/pkg/clients/gmailclient"
	"github.com/noelwild/Watchtower/pkg/postgres"
	"github.com/noelwild/Watchtower/pkg/utils"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string

	gmailClient *gmailclient.Client
}

// GmailClient lazily initializes the gmail client. Only the notification
// path needs Google credentials, so the OAuth flow is deferred until a
// command actually sends email.
func (a *AppContext) GmailClient() (*gmailclient.Client, error) {
	if a.gmailClient != nil {
		return a.gmailClient, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, err
	}

	token, err := utils.GetTokenWithFlow(a.Ctx, oauthConfig, a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain OAuth token: %w", err)
	}

	client, err := gmailclient.NewClient(a.Ctx, oauthCfg, token, a.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	a.gmailClient = client
	return client, nil
}
