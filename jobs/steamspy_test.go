package jobs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"

	"steamtracker/models"
)

func TestFetchEstimatedOwners_Success(t *testing.T) {
	defer gock.Off()

	resp := models.SteamSpyAppDetails{
		AppID:  730,
		Name:   "Counter-Strike 2",
		Owners: "1,000,000 .. 2,000,000",
	}

	gock.New(fmt.Sprintf(steamSpyEndpoint, 730)).
		Get("/").
		Reply(200).
		JSON(resp)

	client := http.Client{}

	owners, err := FetchEstimatedOwners(client, 730)

	assert.NoError(t, err)
	assert.Equal(t, "1,000,000 .. 2,000,000", owners)
}

func TestFetchEstimatedOwners_MissingField(t *testing.T) {
	defer gock.Off()

	gock.New(fmt.Sprintf(steamSpyEndpoint, 730)).
		Get("/").
		Reply(200).
		JSON(map[string]string{"name": "Counter-Strike 2"})

	client := http.Client{}

	owners, err := FetchEstimatedOwners(client, 730)

	assert.NoError(t, err)
	assert.Equal(t, "unknown", owners)
}

func TestFetchEstimatedOwners_BadStatusCode(t *testing.T) {
	defer gock.Off()

	gock.New(fmt.Sprintf(steamSpyEndpoint, 730)).
		Get("/").
		Reply(500)

	client := http.Client{}

	owners, err := FetchEstimatedOwners(client, 730)

	assert.Error(t, err)
	assert.Equal(t, "unknown", owners)
}

func TestFetchEstimatedOwners_BadBody(t *testing.T) {
	defer gock.Off()

	gock.New(fmt.Sprintf(steamSpyEndpoint, 730)).
		Get("/").
		Reply(200).
		BodyString("<html>rate limited</html>")

	client := http.Client{}

	owners, err := FetchEstimatedOwners(client, 730)

	assert.Error(t, err)
	assert.Equal(t, "unknown", owners)
}
