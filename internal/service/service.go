package service

import (
	"stock-tracker/config"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/cache"
	"stock-tracker/pkg/logger"
)

type Service struct {
	UserService        UserService
	StockService       StockService
	PortfolioService   PortfolioService
	TransactionService TransactionService
	WatchlistService   WatchlistService
	AlertSweeper       *AlertSweeper
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	userService := NewUserService(cfg, log, repo.UserRepo)
	stockService := NewStockService(log, repo.StockRepo, inmemoryCache)
	portfolioService := NewPortfolioService(log, repo.PortfolioRepo, repo.UserRepo)
	transactionService := NewTransactionService(log, repo.TransactionRepo, repo.UserRepo, repo.StockRepo, repo.PortfolioRepo, repo.UnitOfWork)
	watchlistService := NewWatchlistService(log, repo.WatchlistRepo, repo.UserRepo, repo.StockRepo)
	alertSweeper := NewAlertSweeper(cfg, log, repo.UserRepo, watchlistService)

	return &Service{
		UserService:        userService,
		StockService:       stockService,
		PortfolioService:   portfolioService,
		TransactionService: transactionService,
		WatchlistService:   watchlistService,
		AlertSweeper:       alertSweeper,
	}
}
