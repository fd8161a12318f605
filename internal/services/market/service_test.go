package market_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"turak/internal/api"
	"turak/internal/notify"
	"turak/internal/services/market"
)

func newService(t *testing.T, handler http.Handler) *market.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return market.New(api.New(srv.URL, nil), notify.Discard{})
}

func TestFetchCurrencies_ReplacesBoard(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/currencies/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(rw, `[
			{"code":"USD","rate":87.45,"description":"US dollar"},
			{"code":"EUR","rate":95.10,"description":"Euro"}
		]`)
	}))

	if err := s.FetchCurrencies(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	got := s.Currencies()
	if len(got) != 2 || got[0].Code != "USD" || got[0].Rate != 87.45 {
		t.Fatalf("currencies: %+v", got)
	}
}

func TestFetchCurrencies_FailureKeepsBoard(t *testing.T) {
	fail := false
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if fail {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(rw, `[{"code":"USD","rate":87.45,"description":"US dollar"}]`)
	}))
	ctx := context.Background()

	if err := s.FetchCurrencies(ctx); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	fail = true
	if err := s.FetchCurrencies(ctx); err == nil {
		t.Fatal("expected error")
	}
	if got := s.Currencies(); len(got) != 1 || got[0].Code != "USD" {
		t.Fatalf("failed fetch must keep the board, got %+v", got)
	}
}

func TestFetchTrends_PassesDateRange(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/market-trends/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2026-07-01" || q.Get("end_date") != "2026-07-31" {
			t.Fatalf("query: %v", q)
		}
		fmt.Fprint(rw, `{
			"priceTrend":[{"date":"2026-07-01","avg_price":5200000}],
			"salesVolume":[{"date":"2026-07-01","sales_volume":14}],
			"popularityRegion":[{"region":"Bishkek","sales_count":220}]
		}`)
	}))

	trends, err := s.FetchTrends(context.Background(), "2026-07-01", "2026-07-31")
	if err != nil {
		t.Fatalf("fetch trends: %v", err)
	}
	if len(trends.PriceTrend) != 1 || trends.PriceTrend[0].AvgPrice != 5200000 {
		t.Fatalf("price trend: %+v", trends.PriceTrend)
	}
	if len(trends.SalesVolume) != 1 || trends.SalesVolume[0].SalesVolume != 14 {
		t.Fatalf("sales volume: %+v", trends.SalesVolume)
	}
	if len(trends.PopularityRegion) != 1 || trends.PopularityRegion[0].Region != "Bishkek" {
		t.Fatalf("regions: %+v", trends.PopularityRegion)
	}
}
