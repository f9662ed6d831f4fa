package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo        UserRepository
	StockRepo       StockRepository
	PortfolioRepo   PortfolioRepository
	TransactionRepo TransactionRepository
	WatchlistRepo   WatchlistRepository
	UnitOfWork      UnitOfWork
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:        NewUserRepository(db),
		StockRepo:       NewStockRepository(db),
		PortfolioRepo:   NewPortfolioRepository(db),
		TransactionRepo: NewTransactionRepository(db),
		WatchlistRepo:   NewWatchlistRepository(db),
		UnitOfWork:      NewUnitOfWork(db),
	}
}
