package database

// ActivityFinderRepository is the data access surface of the service. Single
// record lookups return a nil record when no row matches, errors are reserved
// for store failures. Update and delete report whether the targeted row
// existed.
type ActivityFinderRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (int64, error)
	GetAllAccounts() ([]Account, error)
	GetAccountById(id int64) (*Account, error)
	GetAccountByUsername(username string) (*Account, error)
	CreateActivity(params ActivityParams) (int64, error)
	GetAllActivities() ([]Activity, error)
	GetActivitiesByAccountId(accountId int64) ([]Activity, error)
	GetActivityById(id int64) (*Activity, error)
	UpdateActivityById(id int64, params ActivityParams) (bool, error)
	DeleteActivityById(id int64) (bool, error)
}
