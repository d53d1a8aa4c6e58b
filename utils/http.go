package utils

import "net/http"

const (
	UserAgent = "SteamTracker/1.0 (player-count collector)"
)

type UARoundtripper struct {
	RT http.RoundTripper
}

func (uart *UARoundtripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", UserAgent)
	rt := uart.RT
	if rt == nil {
		// Resolved per request so a replaced default transport (as test
		// interceptors install) is still picked up.
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(req)
}

func NewHTTPClient() http.Client {
	return http.Client{
		Transport: &UARoundtripper{},
	}
}
