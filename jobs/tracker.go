package jobs

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"steamtracker/db"
	"steamtracker/models"
)

// TrackGames visits every tracked game in order, collects the three
// upstream readings and appends one observation row per game.
//
// Collector failures are absorbed here: the diagnostic goes to slog and the
// neutral default takes the reading's place, so one flaky upstream never
// stops the run. A true zero and a substituted zero look the same in the
// stored row; only the log tells them apart. Store failures are not
// absorbed and abort the run with any remaining games untracked.
func TrackGames(store db.Store, client http.Client, apiKey string, games []models.Game) error {
	for _, game := range games {
		fmt.Printf("\nTracking %s (AppID: %d)\n", game.Name, game.ID)

		count, err := FetchPlayerCount(client, apiKey, game.ID)
		if err != nil {
			slog.Error("Failed to fetch player count",
				slog.Int("appid", game.ID),
				slog.String("stack", err.Error()),
			)
			count = 0
		}

		sale, err := FetchSaleInfo(client, apiKey, game.ID)
		if err != nil {
			slog.Error("Failed to fetch sale info",
				slog.Int("appid", game.ID),
				slog.String("stack", err.Error()),
			)
			sale = models.SaleInfo{}
		}

		owners, err := FetchEstimatedOwners(client, game.ID)
		if err != nil {
			slog.Error("Failed to fetch ownership estimate",
				slog.Int("appid", game.ID),
				slog.String("stack", err.Error()),
			)
			owners = "unknown"
		}

		obs := models.Observation{
			GameID:          game.ID,
			Timestamp:       time.Now().Unix(),
			PlayerCount:     count,
			OnSale:          sale.OnSale,
			DiscountPercent: sale.DiscountPercent,
			OriginalPrice:   sale.OriginalPrice,
			FinalPrice:      sale.FinalPrice,
			EstimatedOwners: owners,
		}

		if err := store.RecordObservation(obs); err != nil {
			return err
		}

		saleStatus := "No"
		if sale.OnSale {
			saleStatus = "Yes"
		}
		fmt.Printf("- Players: %d\n", count)
		fmt.Printf("- On Sale: %s (%d%% off)\n", saleStatus, sale.DiscountPercent)
		fmt.Printf("- Price: %s / %s (cents)\n", formatPrice(sale.FinalPrice), formatPrice(sale.OriginalPrice))
		fmt.Printf("- Owners: %s\n", owners)
	}
	return nil
}

func formatPrice(price *int64) string {
	if price == nil {
		return "n/a"
	}
	return strconv.FormatInt(*price, 10)
}
