package database

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "modernc.org/sqlite/lib"
)

func (db *SqliteFinderRepository) CreateAccount(params CreateAccountParams) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO accounts (username, password) VALUES (?, ?)",
		params.Username,
		params.Password,
	)
	if err != nil {
		if hasResultCode(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}

	return res.LastInsertId()
}

func (db *SqliteFinderRepository) GetAllAccounts() ([]Account, error) {
	rows, err := db.conn.Query(
		"SELECT id, username, password FROM accounts ORDER BY username",
	)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	var accounts = make([]Account, 0)
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.Id, &a.Username, &a.Password); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (db *SqliteFinderRepository) GetAccountById(id int64) (*Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password FROM accounts WHERE id = ? LIMIT 1",
		id,
	)

	var a Account
	err := row.Scan(&a.Id, &a.Username, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}

	return &a, nil
}

func (db *SqliteFinderRepository) GetAccountByUsername(username string) (*Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password FROM accounts WHERE username = ? LIMIT 1",
		username,
	)

	var a Account
	err := row.Scan(&a.Id, &a.Username, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}

	return &a, nil
}

func (db *SqliteFinderRepository) CreateActivity(params ActivityParams) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO activities (accountId, title, description, startTime, endTime, latitude, longitude) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?)",
		params.AccountId,
		params.Title,
		params.Description,
		params.StartTime,
		params.EndTime,
		params.Latitude,
		params.Longitude,
	)
	if err != nil {
		if hasResultCode(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("insert activity: %w", err)
	}

	return res.LastInsertId()
}

func (db *SqliteFinderRepository) GetAllActivities() ([]Activity, error) {
	rows, err := db.conn.Query(
		"SELECT id, accountId, title, description, startTime, endTime, latitude, longitude " +
			"FROM activities ORDER BY startTime",
	)
	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (db *SqliteFinderRepository) GetActivitiesByAccountId(accountId int64) ([]Activity, error) {
	rows, err := db.conn.Query(
		"SELECT id, accountId, title, description, startTime, endTime, latitude, longitude "+
			"FROM activities WHERE accountId = ? ORDER BY startTime",
		accountId,
	)
	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (db *SqliteFinderRepository) GetActivityById(id int64) (*Activity, error) {
	row := db.conn.QueryRow(
		"SELECT id, accountId, title, description, startTime, endTime, latitude, longitude "+
			"FROM activities WHERE id = ? LIMIT 1",
		id,
	)

	var a Activity
	err := row.Scan(
		&a.Id,
		&a.AccountId,
		&a.Title,
		&a.Description,
		&a.StartTime,
		&a.EndTime,
		&a.Latitude,
		&a.Longitude,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select activity: %w", err)
	}

	return &a, nil
}

func (db *SqliteFinderRepository) UpdateActivityById(id int64, params ActivityParams) (bool, error) {
	res, err := db.conn.Exec(
		"UPDATE activities SET title = ?, description = ?, startTime = ?, endTime = ?, latitude = ?, longitude = ? "+
			"WHERE id = ?",
		params.Title,
		params.Description,
		params.StartTime,
		params.EndTime,
		params.Latitude,
		params.Longitude,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("update activity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected == 1, nil
}

func (db *SqliteFinderRepository) DeleteActivityById(id int64) (bool, error) {
	res, err := db.conn.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected == 1, nil
}

func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var activities = make([]Activity, 0)
	for rows.Next() {
		var a Activity
		err := rows.Scan(
			&a.Id,
			&a.AccountId,
			&a.Title,
			&a.Description,
			&a.StartTime,
			&a.EndTime,
			&a.Latitude,
			&a.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}
