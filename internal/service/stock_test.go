package service

import (
	"context"
	"testing"
	"time"

	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockService(t *testing.T, repo *fakeStockRepo) StockService {
	return NewStockService(testLogger(t), repo, cache.NewCache(time.Minute, time.Minute))
}

func TestStockService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateStockRequest
		wantTicker string
		wantErr    string
	}{
		{
			name: "ticker is normalized to upper case",
			req: dto.CreateStockRequest{
				TickerSymbol: " aapl ",
				CompanyName:  "Apple Inc.",
				CurrentPrice: decimal.RequireFromString("178.25"),
				MarketCap:    2_800_000_000_000,
				Sector:       "Technology",
			},
			wantTicker: "AAPL",
		},
		{
			name: "ticker with digits rejected",
			req: dto.CreateStockRequest{
				TickerSymbol: "AAPL1",
				CompanyName:  "Apple Inc.",
				CurrentPrice: decimal.RequireFromString("178.25"),
				MarketCap:    1000,
				Sector:       "Technology",
			},
			wantErr: "ticker must be 1-10 uppercase letters",
		},
		{
			name: "non-positive price rejected",
			req: dto.CreateStockRequest{
				TickerSymbol: "MSFT",
				CompanyName:  "Microsoft",
				CurrentPrice: decimal.Zero,
				MarketCap:    1000,
				Sector:       "Technology",
			},
			wantErr: "stock price must be positive",
		},
		{
			name: "non-positive market cap rejected",
			req: dto.CreateStockRequest{
				TickerSymbol: "MSFT",
				CompanyName:  "Microsoft",
				CurrentPrice: decimal.RequireFromString("400.00"),
				MarketCap:    0,
			},
			wantErr: "market cap must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStockService(t, newFakeStockRepo())
			stock, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTicker, stock.TickerSymbol)
		})
	}
}

func TestStockService_Create_DuplicateTickerCaseInsensitive(t *testing.T) {
	repo := newFakeStockRepo(&model.Stock{
		TickerSymbol: "AAPL",
		CompanyName:  "Apple Inc.",
		CurrentPrice: decimal.RequireFromString("178.25"),
		MarketCap:    1000,
		Sector:       "Technology",
	})
	svc := newStockService(t, repo)

	_, err := svc.Create(context.Background(), dto.CreateStockRequest{
		TickerSymbol: "aapl",
		CompanyName:  "Apple Clone",
		CurrentPrice: decimal.RequireFromString("1.00"),
		MarketCap:    1,
		Sector:       "Technology",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "already exists")
}

func TestStockService_SearchByTicker(t *testing.T) {
	repo := newFakeStockRepo(&model.Stock{
		TickerSymbol: "GOOG",
		CompanyName:  "Alphabet",
		CurrentPrice: decimal.RequireFromString("140.00"),
		MarketCap:    1000,
		Sector:       "Technology",
	})
	svc := newStockService(t, repo)

	stock, err := svc.SearchByTicker(context.Background(), "goog")
	require.NoError(t, err)
	assert.Equal(t, "GOOG", stock.TickerSymbol)

	// Second lookup is served from cache even after the row is gone.
	require.NoError(t, repo.Delete(context.Background(), stock.ID))
	cached, err := svc.SearchByTicker(context.Background(), "GOOG")
	require.NoError(t, err)
	assert.Equal(t, "GOOG", cached.TickerSymbol)
}

func TestStockService_SearchByTicker_NotFound(t *testing.T) {
	svc := newStockService(t, newFakeStockRepo())

	_, err := svc.SearchByTicker(context.Background(), "NOPE")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStockService_UpdatePrice(t *testing.T) {
	tests := []struct {
		name        string
		oldPrice    string
		newPrice    string
		wantWarning bool
	}{
		{
			name:     "small move has no warning",
			oldPrice: "100.00",
			newPrice: "110.00",
		},
		{
			name:        "move above twenty percent warns",
			oldPrice:    "100.00",
			newPrice:    "130.00",
			wantWarning: true,
		},
		{
			name:        "large drop warns too",
			oldPrice:    "100.00",
			newPrice:    "70.00",
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStockRepo(&model.Stock{
				ID:           1,
				TickerSymbol: "TSLA",
				CurrentPrice: decimal.RequireFromString(tt.oldPrice),
				MarketCap:    1000,
				Sector:       "Automotive",
			})
			svc := newStockService(t, repo)

			result, err := svc.UpdatePrice(context.Background(), 1, decimal.RequireFromString(tt.newPrice))

			require.NoError(t, err)
			assert.True(t, result.NewPrice.Equal(decimal.RequireFromString(tt.newPrice)))
			if tt.wantWarning {
				assert.NotEmpty(t, result.Warning)
			} else {
				assert.Empty(t, result.Warning)
			}

			stored, _ := repo.GetByID(context.Background(), 1)
			assert.True(t, stored.CurrentPrice.Equal(decimal.RequireFromString(tt.newPrice)))
		})
	}
}

func TestStockService_UpdatePrice_Invalid(t *testing.T) {
	svc := newStockService(t, newFakeStockRepo())

	_, err := svc.UpdatePrice(context.Background(), 1, decimal.RequireFromString("-5"))
	assert.ErrorContains(t, err, "stock price must be positive")

	_, err = svc.UpdatePrice(context.Background(), 1, decimal.RequireFromString("5"))
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
