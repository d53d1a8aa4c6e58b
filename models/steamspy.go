package models

type SteamSpyAppDetails struct {
	AppID  int    `json:"appid"`
	Name   string `json:"name"`
	Owners string `json:"owners"`
}
