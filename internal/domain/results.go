package domain

type SplitOutcome struct {
	Added      int `json:"added"`
	Waitlisted int `json:"waitlisted"`
}

type RemoveOutcome struct {
	SessionID string
	Removed   int
	Promotion PromotionReport
}

type CancelOutcome struct {
	SessionID string
	Freed     int
	Promotion PromotionReport
}

type PartyOutcome struct {
	RegistrationID string
	Confirmed      int
	Waitlisted     int
}

type IntentOutcome struct {
	IntentID       string `json:"intent_id"`
	RegistrationID string `json:"registration_id,omitempty"`
	Confirmed      int    `json:"confirmed"`
	Waitlisted     int    `json:"waitlisted"`
}

type SweepReport struct {
	IntentsExpired       int `json:"intents_expired"`
	RegistrationsExpired int `json:"registrations_expired"`
	Promoted             int `json:"promoted"`
}
