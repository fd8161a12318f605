package market

import (
	"context"
	"net/url"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// Service is the market-data state container: the currency board, cached
// between fetches, and pass-through trend queries.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu         sync.Mutex
	currencies []domain.Currency
}

// New constructs a market service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// FetchCurrencies replaces the currency board.
func (s *Service) FetchCurrencies(ctx context.Context) error {
	var currencies []domain.Currency
	if err := s.apiClient.Get(ctx, "/currencies/", &currencies); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load exchange rates"))
		return err
	}

	s.mu.Lock()
	s.currencies = currencies
	s.mu.Unlock()
	return nil
}

// Currencies returns a snapshot of the board.
func (s *Service) Currencies() []domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}

// FetchTrends returns the analytics for the inclusive date range. Dates are
// YYYY-MM-DD strings, passed through to the backend unparsed.
func (s *Service) FetchTrends(ctx context.Context, startDate, endDate string) (domain.MarketTrends, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var trends domain.MarketTrends
	if err := s.apiClient.Get(ctx, "/market-trends/?"+q.Encode(), &trends); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load market trends"))
		return domain.MarketTrends{}, err
	}
	return trends, nil
}

// Compile-time assertion that Service implements domain.MarketService.
var _ domain.MarketService = (*Service)(nil)
