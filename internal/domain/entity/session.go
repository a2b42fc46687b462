package entity

import "time"

type SessionStatus string

const (
	SessionIdle    SessionStatus = "IDLE"
	SessionLoading SessionStatus = "LOADING"
	SessionSuccess SessionStatus = "SUCCESS"
	SessionFailed  SessionStatus = "FAILED"
)

// Session is the visible state of one widget. At most one of Reading and
// Error is set, and Loading is true only while Status is SessionLoading.
// Transitions return a new value so the whole state is written at once.
type Session struct {
	ID        string          `json:"id"`
	City      string          `json:"city"`
	Status    SessionStatus   `json:"status"`
	Loading   bool            `json:"loading"`
	Reading   *WeatherReading `json:"reading,omitempty"`
	Error     string          `json:"error,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewSession(id string, now time.Time) Session {
	return Session{ID: id, Status: SessionIdle, UpdatedAt: now}
}

// Begin enters the loading state for city, clearing any previous outcome.
func (s Session) Begin(city string, now time.Time) Session {
	return Session{ID: s.ID, City: city, Status: SessionLoading, Loading: true, UpdatedAt: now}
}

func (s Session) Succeed(reading WeatherReading, now time.Time) Session {
	return Session{ID: s.ID, City: s.City, Status: SessionSuccess, Reading: &reading, UpdatedAt: now}
}

func (s Session) Fail(message string, now time.Time) Session {
	return Session{ID: s.ID, City: s.City, Status: SessionFailed, Error: message, UpdatedAt: now}
}
