package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"steamtracker/models"
	"steamtracker/utils"
)

var (
	playerCountEndpoint = "https://api.steampowered.com/ISteamUserStats/GetNumberOfCurrentPlayers/v1/?appid=%d&key=%s"
	appDetailsEndpoint  = "https://store.steampowered.com/api/appdetails?appids=%d&key=%s&cc=us&l=en"
)

// FetchPlayerCount returns the current player count for a game. An absent
// player_count field decodes to 0, which the API uses for delisted titles.
func FetchPlayerCount(client http.Client, apiKey string, appID int) (int, error) {
	countUrl := fmt.Sprintf(playerCountEndpoint, appID, apiKey)

	req, err := http.NewRequest("GET", countUrl, nil)
	if err != nil {
		return 0, err
	}
	req.Header = http.Header{
		"Accept":       []string{"application/json"},
		"Content-Type": []string{"application/json"},
		"User-Agent":   []string{utils.UserAgent},
	}
	res, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("player count request returned %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, err
	}
	var countResponse models.SteamPlayerCountResponse

	if err = json.Unmarshal(body, &countResponse); err != nil {
		return 0, err
	}

	return countResponse.Response.PlayerCount, nil
}

// FetchSaleInfo returns the current pricing record for a game. Free to play
// titles have no price_overview block and unknown appids come back with
// success: false. Both cases are the neutral zero value, not an error.
func FetchSaleInfo(client http.Client, apiKey string, appID int) (models.SaleInfo, error) {
	detailsUrl := fmt.Sprintf(appDetailsEndpoint, appID, apiKey)

	req, err := http.NewRequest("GET", detailsUrl, nil)
	if err != nil {
		return models.SaleInfo{}, err
	}
	req.Header = http.Header{
		"Accept":       []string{"application/json"},
		"Content-Type": []string{"application/json"},
		"User-Agent":   []string{utils.UserAgent},
	}
	res, err := client.Do(req)
	if err != nil {
		return models.SaleInfo{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.SaleInfo{}, fmt.Errorf("appdetails request returned %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.SaleInfo{}, err
	}
	var detailsResponse map[string]models.SteamAppResponse

	if err = json.Unmarshal(body, &detailsResponse); err != nil {
		return models.SaleInfo{}, err
	}

	appData := detailsResponse[strconv.Itoa(appID)]
	if !appData.Success || appData.Data.PriceOverview == nil {
		return models.SaleInfo{}, nil
	}

	price := appData.Data.PriceOverview
	return models.SaleInfo{
		OnSale:          price.DiscountPercent > 0,
		DiscountPercent: price.DiscountPercent,
		OriginalPrice:   &price.Initial,
		FinalPrice:      &price.Final,
	}, nil
}
