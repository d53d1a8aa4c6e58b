package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"steamtracker/models"
	"steamtracker/utils"
)

var (
	steamSpyEndpoint = "https://steamspy.com/api.php?request=appdetails&appid=%d"
)

// FetchEstimatedOwners returns the aggregator's coarse ownership range for
// a game, e.g. "1,000,000 .. 2,000,000". There is no accuracy guarantee;
// a response without the field maps to "unknown".
func FetchEstimatedOwners(client http.Client, appID int) (string, error) {
	ownersUrl := fmt.Sprintf(steamSpyEndpoint, appID)

	req, err := http.NewRequest("GET", ownersUrl, nil)
	if err != nil {
		return "unknown", err
	}
	req.Header = http.Header{
		"Accept":     []string{"application/json"},
		"User-Agent": []string{utils.UserAgent},
	}
	res, err := client.Do(req)
	if err != nil {
		return "unknown", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "unknown", fmt.Errorf("steamspy request returned %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "unknown", err
	}
	var spyResponse models.SteamSpyAppDetails

	if err = json.Unmarshal(body, &spyResponse); err != nil {
		return "unknown", err
	}

	if spyResponse.Owners == "" {
		return "unknown", nil
	}

	return spyResponse.Owners, nil
}
