package user

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"

	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/utils"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return userRepo.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// UpdateSetDocument applies the subset of $set keys the service layer
// actually writes.
func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for k, v := range updateDoc {
		switch k {
		case "name":
			u.Name = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "provider_setup_token":
			u.ProviderSetupToken = v.(string)
		case "provider_setup_expires":
			if v == nil {
				u.ProviderSetupExpires = nil
			}
		case "is_verified":
			u.IsVerified = v.(bool)
		case "saved_service_ids":
			u.SavedServiceIDs = v.([]string)
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetBySetupToken(tokenHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ProviderSetupToken != "" && u.ProviderSetupToken == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByAccountType(models.AccountType) (int64, error) { return 0, nil }
func (r *fakeUserRepo) CountCreatedSince(time.Time) (int64, error)           { return 0, nil }
func (r *fakeUserRepo) CountActiveSince(time.Time) (int64, error)            { return 0, nil }

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	s := &DefaultUserService{Repo: repo}

	resp, err := s.Register(RegisterRequest{
		Name:        "Ann",
		Email:       "Ann@Example.com",
		Password:    "hunter22",
		AccountType: models.AccountCustomer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ann@example.com", resp.Email)

	// Stored credential is a bcrypt hash, never the raw password.
	stored, err := repo.GetByEmail("ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	got, err := s.Authenticate("ANN@example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)

	_, err = s.Authenticate("ann@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	s := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := s.Register(RegisterRequest{Email: "a@b.c", Password: "hunter22", AccountType: models.AccountCustomer})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Register(RegisterRequest{Name: "A", Email: "a@b.c", Password: "hunter22", AccountType: "staff"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Register(RegisterRequest{Name: "A", Email: "a@b.c", Password: "short", AccountType: models.AccountCustomer})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u-1", Email: "a@b.c"})
	s := &DefaultUserService{Repo: repo}

	_, err := s.Register(RegisterRequest{Name: "A", Email: "A@B.C", Password: "hunter22", AccountType: models.AccountCustomer})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_PendingSetupAccountRejected(t *testing.T) {
	// Conversion creates accounts with no password; they must claim the
	// setup link before signing in.
	repo := newFakeUserRepo(&models.User{ID: "u-1", Email: "dana@b.c", AccountType: models.AccountProvider})
	s := &DefaultUserService{Repo: repo}

	_, err := s.Authenticate("dana@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func pendingProvider(token string, expires time.Time) *models.User {
	return &models.User{
		ID:                   "u-1",
		Name:                 "Dana",
		Email:                "dana@b.c",
		AccountType:          models.AccountProvider,
		ProviderSetupToken:   utils.HashToken(token),
		ProviderSetupExpires: &expires,
	}
}

func TestCompleteProviderSetup(t *testing.T) {
	repo := newFakeUserRepo(pendingProvider("raw-token", time.Now().Add(24*time.Hour)))
	s := &DefaultUserService{Repo: repo}

	resp, err := s.CompleteProviderSetup("raw-token", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.AccountProvider, resp.AccountType)

	stored, _ := repo.GetByID("u-1")
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.ProviderSetupToken)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	// The link is single-use.
	_, err = s.CompleteProviderSetup("raw-token", "hunter22")
	assert.ErrorIs(t, err, ErrSetupTokenInvalid)
}

func TestCompleteProviderSetup_Expired(t *testing.T) {
	repo := newFakeUserRepo(pendingProvider("raw-token", time.Now().Add(-time.Hour)))
	s := &DefaultUserService{Repo: repo}

	_, err := s.CompleteProviderSetup("raw-token", "hunter22")
	assert.ErrorIs(t, err, ErrSetupTokenExpired)
}

func TestCompleteProviderSetup_BadToken(t *testing.T) {
	repo := newFakeUserRepo(pendingProvider("raw-token", time.Now().Add(time.Hour)))
	s := &DefaultUserService{Repo: repo}

	_, err := s.CompleteProviderSetup("guessed", "hunter22")
	assert.ErrorIs(t, err, ErrSetupTokenInvalid)

	_, err = s.CompleteProviderSetup("", "hunter22")
	assert.ErrorIs(t, err, ErrSetupTokenInvalid)

	_, err = s.CompleteProviderSetup("raw-token", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestToggleSavedService(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u-1", Email: "a@b.c"})
	s := &DefaultUserService{Repo: repo}

	u, err := s.ToggleSavedService("u-1", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, u.SavedServiceIDs)

	u, err = s.ToggleSavedService("u-1", "svc-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1", "svc-2"}, u.SavedServiceIDs)

	u, err = s.ToggleSavedService("u-1", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, u.SavedServiceIDs)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u-1", Name: "Ann", Phone: "111"})
	s := &DefaultUserService{Repo: repo}

	u, err := s.UpdateProfile("u-1", "Anna", "")
	require.NoError(t, err)
	assert.Equal(t, "Anna", u.Name)
	assert.Equal(t, "111", u.Phone)

	_, err = s.UpdateProfile("missing", "x", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
