// Package validation holds the pure content checks for accounts and
// activities. Each function accumulates every applicable violation code, the
// caller decides how to report them.
package validation

import (
	"time"
)

const (
	UsernameMinLength    = 3
	UsernameMaxLength    = 9
	PasswordMinLength    = 6 // should be higher, kept low to facilitate testing
	TitleMinLength       = 5
	TitleMaxLength       = 50
	DescriptionMinLength = 20
	DescriptionMaxLength = 500
)

const (
	CodeUsernameTooShort     = "usernameTooShort"
	CodeUsernameTooLong      = "usernameTooLong"
	CodePasswordTooShort     = "passwordTooShort"
	CodeTitleTooShort        = "titleTooShort"
	CodeTitleTooLong         = "titleTooLong"
	CodeDescriptionTooShort  = "descriptionTooShort"
	CodeDescriptionTooLong   = "descriptionTooLong"
	CodeStartTimeTooEarly    = "startTimeTooEarly"
	CodeEndingBeforeStarting = "endingBeforeStarting"
	CodeIdChanged            = "idChanged"
	CodeAccountIdChanged     = "accountIdChanged"
	CodeStarted              = "started"
)

// ActivityContent carries the fields every activity write must satisfy.
// Times are epoch milliseconds.
type ActivityContent struct {
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
}

// ActivityUpdate describes an update request next to the stored activity it
// targets.
type ActivityUpdate struct {
	StoredId           int64
	StoredAccountId    int64
	StoredStartTime    int64
	SubmittedId        int64
	SubmittedAccountId int64
	Content            ActivityContent
}

// NewAccount reports every violation in an account creation request.
func NewAccount(username, password string) []string {
	var codes []string

	if len(username) < UsernameMinLength {
		codes = append(codes, CodeUsernameTooShort)
	} else if UsernameMaxLength < len(username) {
		codes = append(codes, CodeUsernameTooLong)
	}

	if len(password) < PasswordMinLength {
		codes = append(codes, CodePasswordTooShort)
	}

	return codes
}

// NewActivity reports every violation in an activity creation request. The
// start time must lie in the future relative to now.
func NewActivity(content ActivityContent, now time.Time) []string {
	return activityContent(content, now)
}

// UpdatedActivity reports every violation in an activity update request. An
// activity whose stored start time has already elapsed is frozen: the single
// started code is reported and suppresses all other checks.
func UpdatedActivity(update ActivityUpdate, now time.Time) []string {
	if update.StoredStartTime < now.UnixMilli() {
		return []string{CodeStarted}
	}

	var codes []string

	if update.StoredId != update.SubmittedId {
		codes = append(codes, CodeIdChanged)
	}

	if update.StoredAccountId != update.SubmittedAccountId {
		codes = append(codes, CodeAccountIdChanged)
	}

	return append(codes, activityContent(update.Content, now)...)
}

func activityContent(content ActivityContent, now time.Time) []string {
	var codes []string

	if len(content.Title) < TitleMinLength {
		codes = append(codes, CodeTitleTooShort)
	} else if TitleMaxLength < len(content.Title) {
		codes = append(codes, CodeTitleTooLong)
	}

	if len(content.Description) < DescriptionMinLength {
		codes = append(codes, CodeDescriptionTooShort)
	} else if DescriptionMaxLength < len(content.Description) {
		codes = append(codes, CodeDescriptionTooLong)
	}

	if content.StartTime < now.UnixMilli() {
		codes = append(codes, CodeStartTimeTooEarly)
	}

	if content.EndTime < content.StartTime {
		codes = append(codes, CodeEndingBeforeStarting)
	}

	return codes
}
