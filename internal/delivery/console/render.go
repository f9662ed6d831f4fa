package console

import (
	"fmt"
	"os"
	"strconv"

	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"github.com/olekukonko/tablewriter"
)

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	return table
}

func renderStocks(stocks []model.Stock) {
	if len(stocks) == 0 {
		fmt.Println("No stocks found.")
		return
	}

	table := newTable([]string{"ID", "Ticker", "Company", "Price", "Market Cap", "Sector"})
	for _, s := range stocks {
		table.Append([]string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.TickerSymbol,
			utils.Truncate(s.CompanyName, 30),
			utils.FormatMoney(s.CurrentPrice),
			utils.FormatMarketCap(s.MarketCap),
			s.Sector,
		})
	}
	table.Render()
}

func renderStockDetail(s *model.Stock) {
	fmt.Printf("\n%s (%s)\n", s.CompanyName, s.TickerSymbol)
	table := newTable([]string{"Field", "Value"})
	table.Append([]string{"Stock ID", strconv.FormatUint(uint64(s.ID), 10)})
	table.Append([]string{"Current Price", utils.FormatMoney(s.CurrentPrice)})
	table.Append([]string{"Market Cap", utils.FormatMarketCap(s.MarketCap)})
	table.Append([]string{"Sector", s.Sector})
	table.Append([]string{"Industry", s.Industry})
	table.Append([]string{"Last Updated", s.UpdatedAt.Format("2006-01-02 15:04")})
	table.Render()
}

func renderUsers(users []model.User) {
	if len(users) == 0 {
		fmt.Println("No users found.")
		return
	}

	table := newTable([]string{"ID", "Username", "Email", "Name", "Balance"})
	for _, u := range users {
		table.Append([]string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Username,
			u.Email,
			u.FirstName + " " + u.LastName,
			utils.FormatMoney(u.AccountBalance),
		})
	}
	table.Render()
}

func renderPortfolios(portfolios []model.Portfolio) {
	if len(portfolios) == 0 {
		fmt.Println("No portfolios found.")
		return
	}

	table := newTable([]string{"ID", "Name", "Description", "Total Value", "Active"})
	for _, p := range portfolios {
		active := "yes"
		if !p.IsActive {
			active = "no"
		}
		table.Append([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.PortfolioName,
			utils.Truncate(p.Description, 40),
			utils.FormatMoney(p.TotalValue),
			active,
		})
	}
	table.Render()
}

func renderTransactions(transactions []dto.TransactionWithRefs) {
	if len(transactions) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	table := newTable([]string{"ID", "Date", "Type", "Ticker", "Qty", "Price", "Total", "Portfolio"})
	for _, t := range transactions {
		table.Append([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.TransactionDate.Format("2006-01-02"),
			t.TransactionType,
			t.TickerSymbol,
			strconv.Itoa(t.Quantity),
			utils.FormatMoney(t.PricePerShare),
			utils.FormatMoney(t.TotalAmount),
			t.PortfolioName,
		})
	}
	table.Render()
}

func renderWatchlist(entries []dto.WatchlistEntry) {
	if len(entries) == 0 {
		fmt.Println("Watchlist is empty.")
		return
	}

	table := newTable([]string{"ID", "Ticker", "Company", "Current", "Target", "Alert", "Added"})
	for _, w := range entries {
		target := "-"
		if w.TargetPrice.Valid {
			target = utils.FormatMoney(w.TargetPrice.Decimal)
		}
		alert := "off"
		if w.AlertEnabled {
			alert = "on"
		}
		table.Append([]string{
			strconv.FormatUint(uint64(w.ID), 10),
			w.TickerSymbol,
			utils.Truncate(w.CompanyName, 30),
			utils.FormatMoney(w.CurrentPrice),
			target,
			alert,
			w.AddedAt.Format("2006-01-02"),
		})
	}
	table.Render()
}

func renderAlerts(alerts []dto.PriceAlert) {
	fmt.Println("\nPRICE ALERTS TRIGGERED:")
	table := newTable([]string{"Ticker", "Company", "Current", "Target"})
	for _, a := range alerts {
		table.Append([]string{
			a.Ticker,
			a.Company,
			utils.FormatMoney(a.CurrentPrice),
			utils.FormatMoney(a.TargetPrice),
		})
	}
	table.Render()
}
