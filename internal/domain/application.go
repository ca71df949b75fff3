package domain

import "time"

// ApplicationStatus is the decision state of an application. Pending is the
// only non-terminal state; accepted and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is created once per unique (candidate, job) pair on the first
// right swipe, and decided by the recruiter exactly once.
type Application struct {
	ID          string            `json:"id"`
	CandidateID string            `json:"candidate_id"`
	JobID       string            `json:"job_id"`
	Status      ApplicationStatus `json:"status"`
	CoverNote   string            `json:"cover_note,omitempty"`
	Source      SwipeSource       `json:"source"`
	CreatedAt   time.Time         `json:"created_at"`
	DecidedAt   *time.Time        `json:"decided_at,omitempty"`
}

// CanDecide reports whether the application is still awaiting a recruiter
// decision.
func (a Application) CanDecide() bool {
	return a.Status == ApplicationStatusPending
}

// SwipeDirection is the direction of a swipe decision.
type SwipeDirection string

const (
	SwipeDirectionLike   SwipeDirection = "like"
	SwipeDirectionReject SwipeDirection = "reject"
)

// Valid reports whether d is a known swipe direction.
func (d SwipeDirection) Valid() bool {
	return d == SwipeDirectionLike || d == SwipeDirectionReject
}

// SwipeSource tags where a swipe originated.
type SwipeSource string

const (
	SwipeSourceDeck   SwipeSource = "deck"
	SwipeSourceSearch SwipeSource = "search"
	SwipeSourceInvite SwipeSource = "invite"
)

// SwipeDecision records one directional decision by a subject about a target.
// Duplicate decisions for the same (subject, target) pair never create a
// second application record.
type SwipeDecision struct {
	SubjectID string         `json:"subject_id"`
	TargetID  string         `json:"target_id"`
	Direction SwipeDirection `json:"direction"`
	Source    SwipeSource    `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}
