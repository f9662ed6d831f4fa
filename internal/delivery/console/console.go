package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"stock-tracker/internal/client"
	"stock-tracker/internal/dto"
	"stock-tracker/pkg/logger"

	"github.com/shopspring/decimal"
)

// App is the interactive console front end. It talks to the REST API
// through the client, never to the database directly.
type App struct {
	log     *logger.Logger
	api     *client.Client
	scanner *bufio.Scanner
	running bool
}

func NewApp(log *logger.Logger, api *client.Client) *App {
	return &App{
		log:     log,
		api:     api,
		scanner: bufio.NewScanner(os.Stdin),
		running: true,
	}
}

func (a *App) Run(ctx context.Context) error {
	if !a.api.CheckConnection(ctx) {
		return fmt.Errorf("API server is not reachable; start it with the 'start' command first")
	}

	a.printHeader()

	for a.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.printMenu()
		choice := a.prompt("Enter your choice: ")

		switch choice {
		case "1":
			a.viewAllStocks(ctx)
		case "2":
			a.viewUserTransactions(ctx)
		case "3":
			a.viewUserPortfolios(ctx)
		case "4":
			a.viewUserWatchlist(ctx)
		case "5":
			a.searchStockByTicker(ctx)
		case "6":
			a.viewStocksBySector(ctx)
		case "7":
			a.viewAllUsers(ctx)
		case "8":
			a.viewStockDetails(ctx)
		case "9":
			a.createTransaction(ctx)
		case "10":
			a.addToWatchlist(ctx)
		case "11":
			a.checkPriceAlerts(ctx)
		case "0":
			a.running = false
			fmt.Println("\nGoodbye!")
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}

	return nil
}

func (a *App) printHeader() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("                    STOCK PORTFOLIO TRACKER")
	fmt.Println("                       Console Client")
	fmt.Println(strings.Repeat("=", 70))
}

func (a *App) printMenu() {
	fmt.Println("\n" + strings.Repeat("-", 70))
	fmt.Println("MAIN MENU")
	fmt.Println(strings.Repeat("-", 70))
	fmt.Println("1.  View All Stocks")
	fmt.Println("2.  View User Transactions")
	fmt.Println("3.  View User Portfolios")
	fmt.Println("4.  View User Watchlist")
	fmt.Println("5.  Search Stock by Ticker")
	fmt.Println("6.  View Stocks by Sector")
	fmt.Println("7.  View All Users")
	fmt.Println("8.  View Stock Details")
	fmt.Println("9.  Create New Transaction")
	fmt.Println("10. Add Stock to Watchlist")
	fmt.Println("11. Check Price Alerts")
	fmt.Println("0.  Exit")
	fmt.Println(strings.Repeat("-", 70))
}

func (a *App) prompt(label string) string {
	fmt.Print(label)
	if !a.scanner.Scan() {
		a.running = false
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func (a *App) promptUint(label string) (uint, bool) {
	raw := a.prompt(label)
	if raw == "" || raw == "0" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Println("Invalid number.")
		return 0, false
	}
	return uint(id), true
}

func (a *App) promptDecimal(label string) (decimal.Decimal, bool) {
	raw := a.prompt(label)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Println("Invalid amount.")
		return decimal.Zero, false
	}
	return d, true
}

func (a *App) viewAllStocks(ctx context.Context) {
	list, err := a.api.GetAllStocks(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderStocks(list.Stocks)
	fmt.Printf("\nTotal Stocks: %d\n", list.Count)
}

func (a *App) viewUserTransactions(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID (or 0 to cancel): ")
	if !ok {
		return
	}

	list, err := a.api.GetUserTransactions(ctx, userID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderTransactions(list.Transactions)
	fmt.Printf("\nTotal Transactions: %d\n", list.Count)
}

func (a *App) viewUserPortfolios(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID (or 0 to cancel): ")
	if !ok {
		return
	}

	list, err := a.api.GetUserPortfolios(ctx, userID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderPortfolios(list.Portfolios)
	fmt.Printf("\nTotal Portfolios: %d\n", list.Count)
}

func (a *App) viewUserWatchlist(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID (or 0 to cancel): ")
	if !ok {
		return
	}

	list, err := a.api.GetUserWatchlist(ctx, userID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderWatchlist(list.Watchlist)
	fmt.Printf("\nTotal Watched: %d\n", list.Count)
}

func (a *App) searchStockByTicker(ctx context.Context) {
	ticker := a.prompt("Enter ticker symbol: ")
	if ticker == "" {
		return
	}

	stock, err := a.api.SearchStockByTicker(ctx, ticker)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderStockDetail(stock)
}

func (a *App) viewStocksBySector(ctx context.Context) {
	sector := a.prompt("Enter sector name: ")
	if sector == "" {
		return
	}

	list, err := a.api.GetStocksBySector(ctx, sector)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderStocks(list.Stocks)
	fmt.Printf("\nStocks in %s: %d\n", sector, list.Count)
}

func (a *App) viewAllUsers(ctx context.Context) {
	list, err := a.api.GetAllUsers(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderUsers(list.Users)
	fmt.Printf("\nTotal Users: %d\n", list.Count)
}

func (a *App) viewStockDetails(ctx context.Context) {
	stockID, ok := a.promptUint("Enter Stock ID (or 0 to cancel): ")
	if !ok {
		return
	}

	stock, err := a.api.GetStock(ctx, stockID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	renderStockDetail(stock)

	transactions, err := a.api.GetStockTransactions(ctx, stockID)
	if err == nil && transactions.Count > 0 {
		fmt.Println("\nRecent transactions:")
		renderTransactions(transactions.Transactions)
	}
}

func (a *App) createTransaction(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID: ")
	if !ok {
		return
	}
	stockID, ok := a.promptUint("Enter Stock ID: ")
	if !ok {
		return
	}
	portfolioID, ok := a.promptUint("Enter Portfolio ID: ")
	if !ok {
		return
	}

	txType := strings.ToUpper(a.prompt("Transaction type (BUY/SELL): "))
	quantityRaw := a.prompt("Quantity: ")
	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil {
		fmt.Println("Invalid quantity.")
		return
	}
	price, ok := a.promptDecimal("Price per share: ")
	if !ok {
		return
	}
	notes := a.prompt("Notes (optional): ")

	result, err := a.api.CreateTransaction(ctx, dto.CreateTransactionRequest{
		UserID:          userID,
		StockID:         stockID,
		PortfolioID:     portfolioID,
		TransactionType: txType,
		Quantity:        quantity,
		PricePerShare:   price,
		Notes:           notes,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("\nTransaction #%d created. Total: $%s, New balance: $%s\n",
		result.TransactionID, result.TotalAmount.StringFixed(2), result.NewBalance.StringFixed(2))
}

func (a *App) addToWatchlist(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID: ")
	if !ok {
		return
	}
	stockID, ok := a.promptUint("Enter Stock ID: ")
	if !ok {
		return
	}

	req := dto.CreateWatchlistRequest{
		UserID:  userID,
		StockID: stockID,
	}

	if target, ok := a.promptDecimal("Target price (blank to skip): "); ok {
		req.TargetPrice = &target
		req.AlertEnabled = strings.EqualFold(a.prompt("Enable alert? (y/n): "), "y")
	}
	req.Notes = a.prompt("Notes (optional): ")

	item, err := a.api.AddToWatchlist(ctx, req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("\nAdded to watchlist with ID %d\n", item.ID)
}

func (a *App) checkPriceAlerts(ctx context.Context) {
	userID, ok := a.promptUint("Enter User ID (or 0 to cancel): ")
	if !ok {
		return
	}

	list, err := a.api.CheckPriceAlerts(ctx, userID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if list.Count == 0 {
		fmt.Println("No alerts triggered.")
		return
	}
	renderAlerts(list.Alerts)
}
