package service

import (
	"context"
	"testing"

	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/logger"
	"stock-tracker/pkg/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return log
}

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string, opts ...utils.DBOption) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username = v.(string)
		case "email":
			u.Email = v.(string)
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "account_balance":
			u.AccountBalance = v.(decimal.Decimal)
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeStockRepo struct {
	stocks map[uint]*model.Stock
	nextID uint
}

func newFakeStockRepo(stocks ...*model.Stock) *fakeStockRepo {
	r := &fakeStockRepo{stocks: make(map[uint]*model.Stock), nextID: 1}
	for _, s := range stocks {
		if s.ID == 0 {
			s.ID = r.nextID
		}
		r.stocks[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *fakeStockRepo) Create(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error {
	stock.ID = r.nextID
	r.nextID++
	r.stocks[stock.ID] = stock
	return nil
}

func (r *fakeStockRepo) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Stock, error) {
	s, ok := r.stocks[id]
	if !ok {
		return nil, nil
	}
	copy := *s
	return &copy, nil
}

func (r *fakeStockRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Stock, error) {
	out := make([]model.Stock, 0, len(r.stocks))
	for _, s := range r.stocks {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStockRepo) GetByTicker(ctx context.Context, ticker string, opts ...utils.DBOption) (*model.Stock, error) {
	for _, s := range r.stocks {
		if s.TickerSymbol == ticker {
			copy := *s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetBySector(ctx context.Context, sector string, opts ...utils.DBOption) ([]model.Stock, error) {
	out := make([]model.Stock, 0)
	for _, s := range r.stocks {
		if s.Sector == sector {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	s, ok := r.stocks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "ticker_symbol":
			s.TickerSymbol = v.(string)
		case "company_name":
			s.CompanyName = v.(string)
		case "current_price":
			s.CurrentPrice = v.(decimal.Decimal)
		case "market_cap":
			s.MarketCap = v.(int64)
		case "sector":
			s.Sector = v.(string)
		case "industry":
			s.Industry = v.(string)
		}
	}
	return nil
}

func (r *fakeStockRepo) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	if _, ok := r.stocks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.stocks, id)
	return nil
}

type fakePortfolioRepo struct {
	portfolios map[uint]*model.Portfolio
	nextID     uint
}

func newFakePortfolioRepo(portfolios ...*model.Portfolio) *fakePortfolioRepo {
	r := &fakePortfolioRepo{portfolios: make(map[uint]*model.Portfolio), nextID: 1}
	for _, p := range portfolios {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		r.portfolios[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakePortfolioRepo) Create(ctx context.Context, portfolio *model.Portfolio, opts ...utils.DBOption) error {
	portfolio.ID = r.nextID
	r.nextID++
	r.portfolios[portfolio.ID] = portfolio
	return nil
}

func (r *fakePortfolioRepo) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Portfolio, error) {
	p, ok := r.portfolios[id]
	if !ok {
		return nil, nil
	}
	copy := *p
	return &copy, nil
}

func (r *fakePortfolioRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Portfolio, error) {
	out := make([]model.Portfolio, 0, len(r.portfolios))
	for _, p := range r.portfolios {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePortfolioRepo) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Portfolio, error) {
	out := make([]model.Portfolio, 0)
	for _, p := range r.portfolios {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	if _, ok := r.portfolios[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fakePortfolioRepo) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	if _, ok := r.portfolios[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.portfolios, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[uint]*model.Transaction
	nextID       uint
	failCreate   error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uint]*model.Transaction), nextID: 1}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *model.Transaction, opts ...utils.DBOption) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	transaction.ID = r.nextID
	r.nextID++
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	copy := *t
	return &copy, nil
}

func (r *fakeTransactionRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error) {
	out := make([]dto.TransactionWithRefs, 0)
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, dto.TransactionWithRefs{Transaction: *t})
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) GetByStock(ctx context.Context, stockID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error) {
	out := make([]dto.TransactionWithRefs, 0)
	for _, t := range r.transactions {
		if t.StockID == stockID {
			out = append(out, dto.TransactionWithRefs{Transaction: *t})
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	t, ok := r.transactions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if notes, ok := fields["notes"]; ok {
		t.Notes = notes.(string)
	}
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	if _, ok := r.transactions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.transactions, id)
	return nil
}

type fakeWatchlistRepo struct {
	items   map[uint]*model.WatchlistItem
	entries []dto.WatchlistEntry
	nextID  uint
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{items: make(map[uint]*model.WatchlistItem), nextID: 1}
}

func (r *fakeWatchlistRepo) Create(ctx context.Context, item *model.WatchlistItem, opts ...utils.DBOption) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *fakeWatchlistRepo) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.WatchlistItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copy := *i
	return &copy, nil
}

func (r *fakeWatchlistRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.WatchlistItem, error) {
	out := make([]model.WatchlistItem, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, *i)
	}
	return out, nil
}

func (r *fakeWatchlistRepo) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.WatchlistEntry, error) {
	return r.entries, nil
}

func (r *fakeWatchlistRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fakeWatchlistRepo) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Run(fn func(opts ...utils.DBOption) error) error {
	return fn()
}
