package mock

import (
	"context"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo        *MockUserRepo
	DogRepo         *MockDogRepo
	RequestRepo     *MockWalkRequestRepo
	ApplicationRepo *MockWalkApplicationRepo
	RatingRepo      *MockWalkRatingRepo
	PaymentRepo     *MockPaymentRepo
	SummaryRepo     *MockWalkerSummaryRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:        &MockUserRepo{},
		DogRepo:         &MockDogRepo{},
		RequestRepo:     &MockWalkRequestRepo{},
		ApplicationRepo: &MockWalkApplicationRepo{},
		RatingRepo:      &MockWalkRatingRepo{},
		PaymentRepo:     &MockPaymentRepo{},
		SummaryRepo:     &MockWalkerSummaryRepo{},
	}
}

type MockUserRepo struct {
	Stored    *models.User
	Users     []models.User
	CreateErr error
	LookupErr error
}

func (m *MockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Username: u.Username, Email: u.Email, Role: u.Role, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Users, nil
}

type MockDogRepo struct {
	Dogs       []models.Dog
	WithOwner  []models.DogWithOwner
	LastCreate *models.Dog
	CreateErr  error
	ListErr    error
}

func (m *MockDogRepo) CreateDog(ctx context.Context, d *models.Dog) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.LastCreate = d
	return 1, nil
}

func (m *MockDogRepo) ListDogsWithOwner(ctx context.Context) ([]models.DogWithOwner, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.WithOwner, nil
}

func (m *MockDogRepo) ListDogsByOwner(ctx context.Context, ownerID int64) ([]models.Dog, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Dog
	for _, d := range m.Dogs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

type MockWalkRequestRepo struct {
	Requests   []models.WalkRequest
	Open       []models.OpenWalkRequest
	LastCreate *models.WalkRequest
	CreateErr  error
	ListErr    error
	UpdateErr  error
}

func (m *MockWalkRequestRepo) CreateWalkRequest(ctx context.Context, wr *models.WalkRequest) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.LastCreate = wr
	return 1, nil
}

func (m *MockWalkRequestRepo) ListWalkRequests(ctx context.Context, status models.RequestStatus) ([]models.WalkRequest, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if status == "" {
		return m.Requests, nil
	}
	var out []models.WalkRequest
	for _, wr := range m.Requests {
		if wr.Status == status {
			out = append(out, wr)
		}
	}
	return out, nil
}

func (m *MockWalkRequestRepo) ListOpenWalkRequests(ctx context.Context) ([]models.OpenWalkRequest, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Open, nil
}

func (m *MockWalkRequestRepo) UpdateWalkRequestStatus(ctx context.Context, id int64, to models.RequestStatus) error {
	return m.UpdateErr
}

type MockWalkApplicationRepo struct {
	Applications []models.WalkApplication
	LastCreate   *models.WalkApplication
	CreateErr    error
	ListErr      error
	UpdateErr    error
}

func (m *MockWalkApplicationRepo) CreateWalkApplication(ctx context.Context, a *models.WalkApplication) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.LastCreate = a
	return 1, nil
}

func (m *MockWalkApplicationRepo) ListWalkApplications(ctx context.Context, f repository.WalkApplicationFilter) ([]models.WalkApplication, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.WalkApplication
	for _, a := range m.Applications {
		if f.RequestID > 0 && a.RequestID != f.RequestID {
			continue
		}
		if f.WalkerID > 0 && a.WalkerID != f.WalkerID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *MockWalkApplicationRepo) UpdateWalkApplicationStatus(ctx context.Context, id int64, to models.ApplicationStatus) error {
	return m.UpdateErr
}

type MockWalkRatingRepo struct {
	Ratings    []models.WalkRating
	LastCreate *models.WalkRating
	CreateErr  error
	ListErr    error
}

func (m *MockWalkRatingRepo) CreateWalkRating(ctx context.Context, r *models.WalkRating) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.LastCreate = r
	return 1, nil
}

func (m *MockWalkRatingRepo) ListWalkRatings(ctx context.Context, walkerID int64) ([]models.WalkRating, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if walkerID <= 0 {
		return m.Ratings, nil
	}
	var out []models.WalkRating
	for _, r := range m.Ratings {
		if r.WalkerID == walkerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type MockPaymentRepo struct {
	Payments   []models.Payment
	LastCreate *models.Payment
	CreateErr  error
	ListErr    error
	UpdateErr  error
}

func (m *MockPaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.LastCreate = p
	return 1, nil
}

func (m *MockPaymentRepo) ListPayments(ctx context.Context, f repository.PaymentFilter) ([]models.Payment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Payment
	for _, p := range m.Payments {
		if f.RequestID > 0 && p.RequestID != f.RequestID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MockPaymentRepo) UpdatePaymentStatus(ctx context.Context, id int64, to models.PaymentStatus) error {
	return m.UpdateErr
}

type MockWalkerSummaryRepo struct {
	Summaries []models.WalkerSummary
	Err       error
}

func (m *MockWalkerSummaryRepo) WalkerSummaries(ctx context.Context) ([]models.WalkerSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summaries, nil
}
