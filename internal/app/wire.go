package app

import (
	"os"
	"path/filepath"

	"turak/internal/api"
	"turak/internal/domain"
	"turak/internal/notify"
	agentsvc "turak/internal/services/agent"
	assistantsvc "turak/internal/services/assistant"
	chatsvc "turak/internal/services/chat"
	consultsvc "turak/internal/services/consult"
	listingsvc "turak/internal/services/listing"
	marketsvc "turak/internal/services/market"
	moderationsvc "turak/internal/services/moderation"
	"turak/internal/services/predict"
	postssvc "turak/internal/services/posts"
	sessionsvc "turak/internal/services/session"
	"turak/internal/store"
)

// Wire bundles the stores, transport and state services for a front end.
type Wire struct {
	Tokens domain.TokenStore
	API    domain.APIClient
	Notify domain.Notifier

	Session    domain.SessionService
	Listing    domain.ListingService
	Moderation domain.ModerationService
	Price      domain.PredictionWorkflow
	Rent       domain.PredictionWorkflow
	History    domain.PredictionHistory
	Posts      domain.PostService
	Chat       domain.ChatService
	Assistant  domain.AssistantService
	Market     domain.MarketService
	Consult    domain.ConsultService
	Agents     domain.AgentService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	home := cfg.Home
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".turak")
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}

	var tokens domain.TokenStore
	if cfg.Passphrase != "" {
		tokens = store.NewEncryptedTokenFileStore(home, cfg.Passphrase)
	} else {
		tokens = store.NewTokenFileStore(home)
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewFeed()
	}

	opts := []api.Option{api.WithRateLimit(cfg.RequestsPerSec)}
	if cfg.HTTP != nil {
		opts = append(opts, api.WithHTTPClient(cfg.HTTP))
	}
	client := api.New(cfg.BaseURL, tokens, opts...)
	dialer := api.NewSocketDialer(cfg.BaseURL, tokens)

	return &Wire{
		Tokens: tokens,
		API:    client,
		Notify: notifier,

		Session:    sessionsvc.New(client, tokens, notifier),
		Listing:    listingsvc.New(client, notifier),
		Moderation: moderationsvc.New(client, notifier),
		Price:      predict.NewPrice(client, notifier),
		Rent:       predict.NewRent(client, notifier),
		History:    predict.NewHistory(client, notifier),
		Posts:      postssvc.New(client, notifier),
		Chat:       chatsvc.New(client, notifier, dialer),
		Assistant:  assistantsvc.New(client, notifier),
		Market:     marketsvc.New(client, notifier),
		Consult:    consultsvc.New(client, notifier),
		Agents:     agentsvc.New(client, notifier),
	}, nil
}
