package models

type Game struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Observation is one appended snapshot for a game. Prices are in minor
// currency units (cents) and nil when the store reported no price data.
type Observation struct {
	ID              int    `db:"id" json:"id"`
	GameID          int    `db:"game_id" json:"game_id"`
	Timestamp       int64  `db:"timestamp" json:"timestamp"`
	PlayerCount     int    `db:"player_count" json:"player_count"`
	OnSale          bool   `db:"on_sale" json:"on_sale"`
	DiscountPercent int    `db:"discount_percent" json:"discount_percent"`
	OriginalPrice   *int64 `db:"original_price" json:"original_price"`
	FinalPrice      *int64 `db:"final_price" json:"final_price"`
	EstimatedOwners string `db:"estimated_owners" json:"estimated_owners"`
}

// SaleInfo is the normalized pricing record for a single game. The zero
// value is the neutral "no sale data" record.
type SaleInfo struct {
	OnSale          bool   `json:"on_sale"`
	DiscountPercent int    `json:"discount_percent"`
	OriginalPrice   *int64 `json:"original_price"`
	FinalPrice      *int64 `json:"final_price"`
}
