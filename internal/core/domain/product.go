package domain

import "github.com/shopspring/decimal"

// Product is a fishing rod in the catalog. The specification columns
// (length, weights, action, material, power, reel size) are free text,
// matching how suppliers describe rods.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"categoryId"`
	RodLength   string          `json:"rodLength"`
	LineWeight  string          `json:"lineWeight"`
	CastWeight  string          `json:"castWeight"`
	Action      string          `json:"action"`
	Material    string          `json:"material"`
	Power       string          `json:"power"`
	ReelSize    string          `json:"reelSize"`
	Price       decimal.Decimal `json:"price"`
}

// Category groups products (spinning, baitcasting, telescopic, ...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
