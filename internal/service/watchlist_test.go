package service

import (
	"context"
	"testing"

	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchlistFixture(t *testing.T) (*fakeWatchlistRepo, WatchlistService) {
	users := newFakeUserRepo(&model.User{ID: 1, Username: "watcher"})
	stocks := newFakeStockRepo(&model.Stock{
		ID:           1,
		TickerSymbol: "NVDA",
		CompanyName:  "NVIDIA",
		CurrentPrice: decimal.RequireFromString("450.00"),
		MarketCap:    1000,
		Sector:       "Technology",
	})
	watchlist := newFakeWatchlistRepo()
	return watchlist, NewWatchlistService(testLogger(t), watchlist, users, stocks)
}

func TestWatchlistService_Add(t *testing.T) {
	_, svc := newWatchlistFixture(t)

	target := decimal.RequireFromString("400.00")
	item, err := svc.Add(context.Background(), dto.CreateWatchlistRequest{
		UserID:       1,
		StockID:      1,
		TargetPrice:  &target,
		AlertEnabled: true,
	})

	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.True(t, item.TargetPrice.Valid)
	assert.True(t, item.TargetPrice.Decimal.Equal(target))
}

func TestWatchlistService_Add_Rejections(t *testing.T) {
	_, svc := newWatchlistFixture(t)

	_, err := svc.Add(context.Background(), dto.CreateWatchlistRequest{UserID: 99, StockID: 1})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)

	_, err = svc.Add(context.Background(), dto.CreateWatchlistRequest{UserID: 1, StockID: 99})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "stock", notFound.Resource)

	negative := decimal.RequireFromString("-1")
	_, err = svc.Add(context.Background(), dto.CreateWatchlistRequest{
		UserID:      1,
		StockID:     1,
		TargetPrice: &negative,
	})
	assert.ErrorContains(t, err, "target price must be positive")
}

func TestWatchlistService_CheckAlerts(t *testing.T) {
	entry := func(ticker string, current, target string, enabled bool) dto.WatchlistEntry {
		e := dto.WatchlistEntry{
			TickerSymbol: ticker,
			CompanyName:  ticker + " Corp",
			CurrentPrice: decimal.RequireFromString(current),
		}
		e.AlertEnabled = enabled
		e.TargetPrice = decimal.NewNullDecimal(decimal.RequireFromString(target))
		return e
	}

	noTarget := dto.WatchlistEntry{
		TickerSymbol: "NOTGT",
		CurrentPrice: decimal.RequireFromString("10.00"),
	}
	noTarget.AlertEnabled = true

	repo, svc := newWatchlistFixture(t)
	repo.entries = []dto.WatchlistEntry{
		entry("HIT", "95.00", "100.00", true),   // at or below target, alert on
		entry("EXACT", "100.00", "100.00", true), // equality triggers too
		entry("ABOVE", "120.00", "100.00", true), // still above target
		entry("OFF", "50.00", "100.00", false),   // alert disabled
		noTarget,                                 // no target price set
	}

	alerts, err := svc.CheckAlerts(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	tickers := []string{alerts[0].Ticker, alerts[1].Ticker}
	assert.Contains(t, tickers, "HIT")
	assert.Contains(t, tickers, "EXACT")
}

func TestWatchlistService_Remove_NotFound(t *testing.T) {
	_, svc := newWatchlistFixture(t)

	err := svc.Remove(context.Background(), 17)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
