package common

const (
	KEY_STOCK_TICKER = "stock:ticker:%s"
)
