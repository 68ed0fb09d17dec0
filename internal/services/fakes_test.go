package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripplanner_backend/internal/models"
	"tripplanner_backend/internal/repositories"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByConfirmationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ConfirmationToken == token && u.ConfirmationToken != "" &&
			u.ConfirmationTokenExp != nil && u.ConfirmationTokenExp.After(time.Now()) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken == token && u.ResetToken != "" &&
			u.ResetTokenExp != nil && u.ResetTokenExp.After(time.Now()) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Surname = user.Surname
	stored.Phone = user.Phone
	stored.PasswordHash = user.PasswordHash
	return nil
}

func (r *fakeUserRepo) UpdateRoles(id uint, roles []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Roles = pq.StringArray(roles)
	return nil
}

func (r *fakeUserRepo) ConfirmEmail(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.EmailConfirmed = true
	return nil
}

func (r *fakeUserRepo) ClearConfirmationToken(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ConfirmationToken = ""
	u.ConfirmationTokenExp = nil
	return nil
}

func (r *fakeUserRepo) SetResetToken(id uint, token string, exp time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetTokenExp = &exp
	return nil
}

func (r *fakeUserRepo) ResetPassword(id uint, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExp = nil
	return nil
}

func (r *fakeUserRepo) LinkPlan(userID uint, plan *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Plans = append(u.Plans, *plan)
	return nil
}

type fakePlanRepo struct {
	mu     sync.Mutex
	nextID uint
	plans  map[uint]*models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{nextID: 1, plans: map[uint]*models.Plan{}}
}

func (r *fakePlanRepo) Create(plan *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.ID = r.nextID
	plan.CreatedAt = time.Now()
	r.nextID++
	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *fakePlanRepo) FindByID(id uint) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePlanRepo) FindByUserID(userID uint) ([]models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) FindBySell(sell bool) ([]models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Plan
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.plans[id]; ok && p.Sell == sell {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(id uint, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return repositories.ErrPlanNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "itineraries":
			p.Itineraries = v.(pq.StringArray)
		case "image_urls":
			p.ImageUrls = v.(pq.StringArray)
		case "selected_countries":
			p.SelectedCountries = v.(pq.StringArray)
		case "accommodations":
			p.Accommodations = v.(pq.StringArray)
		case "seasons":
			p.Seasons = v.(pq.StringArray)
		case "total_price":
			p.TotalPrice = v.(float64)
		case "total_cost":
			p.TotalCost = v.(float64)
		case "sell":
			p.Sell = v.(bool)
		}
	}
	return nil
}

type fakeItineraryRepo struct {
	mu        sync.Mutex
	docs      map[string]models.Itinerary
	order     []string
	failAfter int // fail the insert once this many documents are stored; 0 means never
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{docs: map[string]models.Itinerary{}}
}

func (r *fakeItineraryRepo) Insert(ctx context.Context, itinerary *models.Itinerary) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAfter > 0 && len(r.docs) >= r.failAfter {
		return "", errors.New("document store write failed")
	}
	oid := primitive.NewObjectID()
	itinerary.ID = oid
	id := oid.Hex()
	r.docs[id] = *itinerary
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeItineraryRepo) FindByID(ctx context.Context, id string) (*models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, repositories.ErrItineraryNotFound
	}
	return &doc, nil
}

func (r *fakeItineraryRepo) Replace(ctx context.Context, id string, itinerary *models.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return repositories.ErrItineraryNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrItineraryNotFound
	}
	itinerary.ID = oid
	r.docs[id] = *itinerary
	return nil
}

type fakeMailer struct {
	mu            sync.Mutex
	confirmations []string
	resets        []string
	err           error
	sent          chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan struct{}, 16)}
}

func (m *fakeMailer) SendConfirmation(toEmail, token string) error {
	m.mu.Lock()
	m.confirmations = append(m.confirmations, toEmail)
	err := m.err
	m.mu.Unlock()
	m.sent <- struct{}{}
	return err
}

func (m *fakeMailer) SendPasswordReset(toEmail, token string) error {
	m.mu.Lock()
	m.resets = append(m.resets, toEmail)
	err := m.err
	m.mu.Unlock()
	m.sent <- struct{}{}
	return err
}

func (m *fakeMailer) waitForSend(timeout time.Duration) bool {
	select {
	case <-m.sent:
		return true
	case <-time.After(timeout):
		return false
	}
}
