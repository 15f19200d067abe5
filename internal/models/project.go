package models

import "time"

// ProjectStatus is the lifecycle state of an accepted challenge.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectExpired   ProjectStatus = "expired"
)

// Project is an accepted challenge. The embedded Brief is a value stamped at
// acceptance time and never changes again.
type Project struct {
	ID        string        `json:"id"`
	Brief     Brief         `json:"brief"`
	StartTime int64         `json:"startTime"` // unix milliseconds
	Status    ProjectStatus `json:"status"`
	Feedback  *Feedback     `json:"feedback,omitempty"`
	UserImage string        `json:"userImage,omitempty"`
}

// Deadline returns the instant the challenge expires.
func (p Project) Deadline() time.Time {
	return time.UnixMilli(p.StartTime).Add(time.Duration(p.Brief.DeadlineHours) * time.Hour)
}

// EffectiveStatus derives the status at the given instant. Expiry is a
// query-time property: an active project whose deadline has elapsed reads as
// expired, nothing is persisted and no timer fires.
func (p Project) EffectiveStatus(now time.Time) ProjectStatus {
	if p.Status == ProjectActive && now.After(p.Deadline()) {
		return ProjectExpired
	}
	return p.Status
}
