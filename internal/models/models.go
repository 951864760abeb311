package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleWalker
}

type DogSize string

const (
	SizeSmall  DogSize = "small"
	SizeMedium DogSize = "medium"
	SizeLarge  DogSize = "large"
)

func (s DogSize) Valid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// CanTransition reports whether a walk request may move from one status to
// another: open -> accepted -> completed, cancel from open or accepted.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	switch s {
	case RequestOpen:
		return to == RequestAccepted || to == RequestCancelled
	case RequestAccepted:
		return to == RequestCompleted || to == RequestCancelled
	default:
		return false
	}
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// CanTransition reports whether an application may move from one status to
// another; only pending applications can be decided.
func (s ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	return s == ApplicationPending && (to == ApplicationAccepted || to == ApplicationRejected)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// CanTransition reports whether a payment may move from one status to
// another; only pending payments can settle or fail.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return s == PaymentPending && (to == PaymentCompleted || to == PaymentFailed)
}

type User struct {
	ID           int64  `json:"user_id" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	Role         Role   `json:"role" db:"role"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Dog struct {
	ID      int64   `json:"dog_id" db:"dog_id"`
	OwnerID int64   `json:"owner_id" db:"owner_id"`
	Name    string  `json:"name" db:"name"`
	Size    DogSize `json:"size" db:"size"`
}

// DogWithOwner is the projection served by GET /api/dogs.
type DogWithOwner struct {
	DogName       string  `json:"dog_name"`
	Size          DogSize `json:"size"`
	OwnerUsername string  `json:"owner_username"`
}

type WalkRequest struct {
	ID              int64         `json:"request_id" db:"request_id"`
	DogID           int64         `json:"dog_id" db:"dog_id"`
	RequestedTime   string        `json:"requested_time" db:"requested_time"`
	DurationMinutes int           `json:"duration_minutes" db:"duration_minutes"`
	Location        string        `json:"location" db:"location"`
	Status          RequestStatus `json:"status" db:"status"`
	CreatedAt       int64         `json:"created_at" db:"created_at"`
}

// OpenWalkRequest is the projection served by GET /api/walkrequests/open.
type OpenWalkRequest struct {
	ID              int64   `json:"request_id"`
	DogName         string  `json:"dog_name"`
	Size            DogSize `json:"size"`
	OwnerUsername   string  `json:"owner_username"`
	RequestedTime   string  `json:"requested_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Location        string  `json:"location"`
}

type WalkApplication struct {
	ID        int64             `json:"application_id" db:"application_id"`
	RequestID int64             `json:"request_id" db:"request_id"`
	WalkerID  int64             `json:"walker_id" db:"walker_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	AppliedAt int64             `json:"applied_at" db:"applied_at"`
}

type WalkRating struct {
	ID        int64  `json:"rating_id" db:"rating_id"`
	RequestID int64  `json:"request_id" db:"request_id"`
	WalkerID  int64  `json:"walker_id" db:"walker_id"`
	OwnerID   int64  `json:"owner_id" db:"owner_id"`
	Rating    int    `json:"rating" db:"rating"`
	Comment   string `json:"comment,omitempty" db:"comment"`
	RatedAt   int64  `json:"rated_at" db:"rated_at"`
}

type Payment struct {
	ID          int64         `json:"payment_id" db:"payment_id"`
	RequestID   int64         `json:"request_id" db:"request_id"`
	OwnerID     int64         `json:"owner_id" db:"owner_id"`
	WalkerID    int64         `json:"walker_id" db:"walker_id"`
	Amount      float64       `json:"amount" db:"amount"`
	Status      PaymentStatus `json:"status" db:"status"`
	PaymentDate int64         `json:"payment_date" db:"payment_date"`
}

// WalkerSummary is one row of GET /api/walkers/summary. AverageRating is nil
// when the walker has no ratings yet.
type WalkerSummary struct {
	WalkerUsername string   `json:"walker_username"`
	TotalRatings   int64    `json:"total_ratings"`
	AverageRating  *float64 `json:"average_rating"`
	CompletedWalks int64    `json:"completed_walks"`
}
