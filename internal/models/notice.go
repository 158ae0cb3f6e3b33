package models

import "time"

// TrialNotice — сообщение для воркера напоминаний: кому и о каком
// окончании пробного периода написать.
type TrialNotice struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	TrialEndDate time.Time `json:"trial_end_date"`
}
