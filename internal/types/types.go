package types

// Account is the wire representation of an account. The password never
// leaves the server.
type Account struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type Activity struct {
	Id          int64   `json:"id"`
	AccountId   int64   `json:"accountId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartTime   int64   `json:"startTime"`
	EndTime     int64   `json:"endTime"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// TokenResponse is the success body of the password grant. The id token is
// meant for client display, only the access token authorizes requests.
type TokenResponse struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
	IdToken     string `json:"id_token"`
}
