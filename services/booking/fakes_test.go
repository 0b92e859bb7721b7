package booking

import (
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bookingRepo "slowday/database/repository/booking"
	serviceRepo "slowday/database/repository/service"
	userRepo "slowday/database/repository/user"
	"slowday/models"
)

// fakeServiceRepo is an in-memory stand-in for the Mongo service repo.
// ReserveSlot and ReleaseSlot hold a mutex across the check-and-update
// so they are as atomic as the ledger's conditional write.
type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		cp := *s
		r.services[s.ID] = &cp
	}
	return r
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[s.ID]; !ok {
		return serviceRepo.ErrNotFound
	}
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (r *fakeServiceRepo) SoftDelete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	s.IsActive = false
	s.DealActive = false
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return serviceRepo.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListActive(q serviceRepo.ListQuery) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ProviderServiceIDs(providerID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, s.ID)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ReserveSlot(id string, weekend bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	if weekend {
		if s.WeekendSlots == nil {
			return nil
		}
		if s.WeekendSlotsUsed >= *s.WeekendSlots {
			return serviceRepo.ErrCapacityExceeded
		}
		s.WeekendSlotsUsed++
		return nil
	}
	if s.WeekdaySlots == nil {
		return nil
	}
	if s.WeekdaySlotsUsed >= *s.WeekdaySlots {
		return serviceRepo.ErrCapacityExceeded
	}
	s.WeekdaySlotsUsed++
	return nil
}

func (r *fakeServiceRepo) ReleaseSlot(id string, weekend bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	if weekend {
		if s.WeekendSlots != nil && s.WeekendSlotsUsed > 0 {
			s.WeekendSlotsUsed--
		}
		return nil
	}
	if s.WeekdaySlots != nil && s.WeekdaySlotsUsed > 0 {
		s.WeekdaySlotsUsed--
	}
	return nil
}

// fakeBookingRepo is an in-memory stand-in for the Mongo booking repo.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	// failCreate simulates an insert failure after the slot was claimed.
	failCreate bool
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		cp := *b
		r.bookings[b.ID] = &cp
	}
	return r
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListForProvider(providerID string, serviceIDs []string, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		ids[id] = true
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID != providerID && !ids[b.ServiceID] {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	out, _ := r.ListByStatus(status)
	return int64(len(out)), nil
}

func (r *fakeBookingRepo) CountCreatedSince(t time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if !b.CreatedAt.Before(t) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) RevenueTotal() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, b := range r.bookings {
		if b.Status == models.BookingConfirmed || b.Status == models.BookingCompleted {
			total += b.Price
		}
	}
	return total, nil
}

// fakeUserRepo is an in-memory stand-in for the Mongo user repo.
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

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

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

func (r *fakeUserRepo) CountByAccountType(accountType models.AccountType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.AccountType == accountType {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountCreatedSince(t time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt.Before(t) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountActiveSince(t time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if !u.UpdatedAt.Before(t) {
			n++
		}
	}
	return n, nil
}

// fakeNotifier records dispatch calls by kind.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNotifier) record(kind string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, kind)
}

func (n *fakeNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

func (n *fakeNotifier) NotifyProviderNewBooking(b *models.Booking, s *models.Service, customerName string) {
	n.record("provider_new_booking")
}

func (n *fakeNotifier) NotifyCustomerConfirmed(b *models.Booking, s *models.Service, email, phone string) {
	n.record("customer_confirmed")
}

func (n *fakeNotifier) NotifyCustomerRejected(b *models.Booking, s *models.Service, email, phone string) {
	n.record("customer_rejected")
}

func (n *fakeNotifier) NotifyCustomerRescheduled(b *models.Booking, s *models.Service, email, phone string) {
	n.record("customer_rescheduled")
}

func (n *fakeNotifier) NotifyProviderCancelled(b *models.Booking, s *models.Service, customerName string) {
	n.record("provider_cancelled")
}

func (n *fakeNotifier) NotifyProviderSetupLink(email, businessName, setupLink string) {
	n.record("provider_setup_link")
}

func (n *fakeNotifier) NotifyProviderDigest(s *models.Service, pendingCount int) {
	n.record("provider_digest")
}
