package models

type SteamPlayerCountResponse struct {
	Response SteamPlayerCount `json:"response"`
}

type SteamPlayerCount struct {
	PlayerCount int `json:"player_count"`
	Result      int `json:"result"`
}

// The appdetails endpoint keys its body by the appid as a string, so the
// top level decodes as map[string]SteamAppResponse.
type SteamAppResponse struct {
	Success bool           `json:"success"`
	Data    SteamAppDetail `json:"data"`
}

type SteamAppDetail struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	PriceOverview *PriceOverview `json:"price_overview"`
}

type PriceOverview struct {
	Currency        string `json:"currency"`
	Initial         int64  `json:"initial"`
	Final           int64  `json:"final"`
	DiscountPercent int    `json:"discount_percent"`
}
