package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/dogwalk/internal/models"
)

// Sentinel errors handlers can map to HTTP statuses without inspecting
// driver-specific error values.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("already exists")
	ErrBadReference      = errors.New("referenced row does not exist")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type DogRepo interface {
	CreateDog(ctx context.Context, d *models.Dog) (int64, error)
	ListDogsWithOwner(ctx context.Context) ([]models.DogWithOwner, error)
	ListDogsByOwner(ctx context.Context, ownerID int64) ([]models.Dog, error)
}

type WalkRequestRepo interface {
	CreateWalkRequest(ctx context.Context, wr *models.WalkRequest) (int64, error)
	ListWalkRequests(ctx context.Context, status models.RequestStatus) ([]models.WalkRequest, error)
	ListOpenWalkRequests(ctx context.Context) ([]models.OpenWalkRequest, error)
	UpdateWalkRequestStatus(ctx context.Context, id int64, to models.RequestStatus) error
}

type WalkApplicationRepo interface {
	CreateWalkApplication(ctx context.Context, a *models.WalkApplication) (int64, error)
	ListWalkApplications(ctx context.Context, f WalkApplicationFilter) ([]models.WalkApplication, error)
	UpdateWalkApplicationStatus(ctx context.Context, id int64, to models.ApplicationStatus) error
}

// WalkApplicationFilter narrows ListWalkApplications; zero values mean "any".
type WalkApplicationFilter struct {
	RequestID int64
	WalkerID  int64
	Status    models.ApplicationStatus
}

type WalkRatingRepo interface {
	CreateWalkRating(ctx context.Context, r *models.WalkRating) (int64, error)
	ListWalkRatings(ctx context.Context, walkerID int64) ([]models.WalkRating, error)
}

type PaymentRepo interface {
	CreatePayment(ctx context.Context, p *models.Payment) (int64, error)
	ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, to models.PaymentStatus) error
}

// PaymentFilter narrows ListPayments; zero values mean "any".
type PaymentFilter struct {
	RequestID int64
	Status    models.PaymentStatus
}

type WalkerSummaryRepo interface {
	WalkerSummaries(ctx context.Context) ([]models.WalkerSummary, error)
}
