package database

type Account struct {
	Id       int64
	Username string
	Password string
}

type Activity struct {
	Id          int64
	AccountId   int64
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
	Latitude    float64
	Longitude   float64
}

type CreateAccountParams struct {
	Username string
	Password string
}

// ActivityParams carries the writable fields of an activity. AccountId is
// only consulted on insert, ownership never changes on update.
type ActivityParams struct {
	AccountId   int64
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
	Latitude    float64
	Longitude   float64
}
