package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slowday/models"
)

func intPtr(n int) *int { return &n }

// wednesday is a fixed weekday timestamp used throughout.
var wednesday = time.Date(2025, 6, 4, 14, 0, 0, 0, time.UTC)

func testService() *models.Service {
	return &models.Service{
		ID:           "svc-1",
		ProviderID:   "prov-1",
		ProviderName: "Quiet Cuts",
		ServiceType:  models.ServiceTypeHaircut,
		Location:     "Riverside",
		WeekdayPrice: 30,
		WeekendPrice: 45,
		WeekdaySlots: intPtr(3),
		WeekendSlots: intPtr(2),
		DealActive:   true,
		IsActive:     true,
	}
}

func newTestBookingService(svcRepo *fakeServiceRepo, bkRepo *fakeBookingRepo, notifier *fakeNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:        bkRepo,
		ServiceRepo: svcRepo,
		UserRepo: newFakeUserRepo(&models.User{
			ID: "cust-1", Name: "Ann", Email: "ann@example.com", Phone: "5551234567",
			AccountType: models.AccountCustomer,
		}),
		Notifier: notifier,
	}
}

func createReq() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID:      "cust-1",
		CustomerName:    "Ann",
		ServiceID:       "svc-1",
		CustomerContact: "ann@example.com",
		PreferredTime:   wednesday,
	}
}

func TestCreateBooking_FreezesQuoteAndClaimsSlot(t *testing.T) {
	svc := testService()
	svc.WeekdaySlotsUsed = 1
	svcRepo := newFakeServiceRepo(svc)
	bkRepo := newFakeBookingRepo()
	notifier := &fakeNotifier{}
	s := newTestBookingService(svcRepo, bkRepo, notifier)

	b, err := s.CreateBooking(createReq())
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, 30.0, b.Price)
	assert.False(t, b.IsWeekend)
	assert.Equal(t, "prov-1", b.ProviderID)

	stored, err := svcRepo.GetByID("svc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.WeekdaySlotsUsed)
	assert.Equal(t, 0, stored.WeekendSlotsUsed)

	assert.Equal(t, []string{"provider_new_booking"}, notifier.kinds())
}

func TestCreateBooking_WeekendUsesWeekendPool(t *testing.T) {
	svcRepo := newFakeServiceRepo(testService())
	s := newTestBookingService(svcRepo, newFakeBookingRepo(), &fakeNotifier{})

	req := createReq()
	req.PreferredTime = time.Date(2025, 6, 7, 11, 0, 0, 0, time.UTC) // Saturday

	b, err := s.CreateBooking(req)
	require.NoError(t, err)
	assert.Equal(t, 45.0, b.Price)
	assert.True(t, b.IsWeekend)

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 1, stored.WeekendSlotsUsed)
	assert.Equal(t, 0, stored.WeekdaySlotsUsed)
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	svc := testService()
	svc.WeekdaySlotsUsed = 3
	svcRepo := newFakeServiceRepo(svc)
	bkRepo := newFakeBookingRepo()
	s := newTestBookingService(svcRepo, bkRepo, &fakeNotifier{})

	_, err := s.CreateBooking(createReq())
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	n, _ := bkRepo.CountAll()
	assert.Zero(t, n)
}

func TestCreateBooking_UnlimitedPoolNeverCounts(t *testing.T) {
	svc := testService()
	svc.WeekdaySlots = nil
	svcRepo := newFakeServiceRepo(svc)
	s := newTestBookingService(svcRepo, newFakeBookingRepo(), &fakeNotifier{})

	for i := 0; i < 10; i++ {
		_, err := s.CreateBooking(createReq())
		require.NoError(t, err)
	}

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 0, stored.WeekdaySlotsUsed)
}

func TestCreateBooking_DealInactive(t *testing.T) {
	for _, mutate := range []func(*models.Service){
		func(s *models.Service) { s.DealActive = false },
		func(s *models.Service) { s.IsActive = false },
	} {
		svc := testService()
		mutate(svc)
		s := newTestBookingService(newFakeServiceRepo(svc), newFakeBookingRepo(), &fakeNotifier{})

		_, err := s.CreateBooking(createReq())
		assert.ErrorIs(t, err, ErrDealInactive)
	}
}

func TestCreateBooking_UnknownService(t *testing.T) {
	s := newTestBookingService(newFakeServiceRepo(), newFakeBookingRepo(), &fakeNotifier{})
	_, err := s.CreateBooking(createReq())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(), &fakeNotifier{})

	req := createReq()
	req.CustomerContact = ""
	_, err := s.CreateBooking(req)
	assert.ErrorIs(t, err, ErrMissingFields)

	req = createReq()
	req.PreferredTime = time.Time{}
	_, err = s.CreateBooking(req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateBooking_LastSlotAdmitsExactlyOne(t *testing.T) {
	svc := testService()
	svc.WeekdaySlots = intPtr(1)
	svcRepo := newFakeServiceRepo(svc)
	bkRepo := newFakeBookingRepo()
	s := newTestBookingService(svcRepo, bkRepo, &fakeNotifier{})

	const racers = 8
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateBooking(createReq())
		}(i)
	}
	wg.Wait()

	var wins, capacity int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrCapacityExceeded):
			capacity++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, capacity)

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 1, stored.WeekdaySlotsUsed)
}

func TestCreateBooking_InsertFailureReturnsSlot(t *testing.T) {
	svc := testService()
	svc.WeekdaySlotsUsed = 1
	svcRepo := newFakeServiceRepo(svc)
	bkRepo := newFakeBookingRepo()
	bkRepo.failCreate = true
	s := newTestBookingService(svcRepo, bkRepo, &fakeNotifier{})

	_, err := s.CreateBooking(createReq())
	require.Error(t, err)

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 1, stored.WeekdaySlotsUsed)
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            "bk-1",
		CustomerID:    "cust-1",
		ServiceID:     "svc-1",
		ProviderID:    "prov-1",
		CustomerName:  "Ann",
		PreferredTime: wednesday,
		Status:        models.BookingPending,
		Price:         30,
		IsWeekend:     false,
		CreatedAt:     time.Now(),
	}
}

func TestUpdateBookingStatus_ProviderConfirms(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), notifier)

	b, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, []string{"customer_confirmed"}, notifier.kinds())
}

func TestUpdateBookingStatus_ServiceOwnerHasAuthority(t *testing.T) {
	// The listing changed hands after the booking was created: the
	// booking still references prov-1 but the service now belongs to
	// prov-2. Either identity may act as the provider.
	svc := testService()
	svc.ProviderID = "prov-2"
	s := newTestBookingService(newFakeServiceRepo(svc), newFakeBookingRepo(pendingBooking()), &fakeNotifier{})

	b, err := s.UpdateBookingStatus("prov-2", "bk-1", models.BookingConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
}

func TestUpdateBookingStatus_CustomerCanOnlyCancel(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.BookingConfirmed, models.BookingRejected,
		models.BookingCompleted, models.BookingRescheduled,
	} {
		s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), &fakeNotifier{})
		_, err := s.UpdateBookingStatus("cust-1", "bk-1", status, &wednesday)
		assert.ErrorIs(t, err, ErrCustomerCancelOnly, "status %s", status)
	}

	notifier := &fakeNotifier{}
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), notifier)
	b, err := s.UpdateBookingStatus("cust-1", "bk-1", models.BookingCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, b.Status)
	assert.Equal(t, []string{"provider_cancelled"}, notifier.kinds())
}

func TestUpdateBookingStatus_StrangerRejected(t *testing.T) {
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), &fakeNotifier{})
	_, err := s.UpdateBookingStatus("someone-else", "bk-1", models.BookingCancelled, nil)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateBookingStatus_TerminalIsFinal(t *testing.T) {
	for _, terminal := range []models.BookingStatus{
		models.BookingRejected, models.BookingCompleted, models.BookingCancelled,
	} {
		bk := pendingBooking()
		bk.Status = terminal
		s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(bk), &fakeNotifier{})
		_, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingConfirmed, nil)
		assert.ErrorIs(t, err, ErrTerminalStatus, "from %s", terminal)
	}
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), &fakeNotifier{})
	_, err := s.UpdateBookingStatus("prov-1", "bk-1", "paused", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateBookingStatus_ReschedulePreservesQuote(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), notifier)

	// Moving a weekday booking onto a Saturday: time changes, price and
	// classification do not.
	saturday := time.Date(2025, 6, 7, 11, 0, 0, 0, time.UTC)
	b, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingRescheduled, &saturday)
	require.NoError(t, err)
	assert.Equal(t, saturday, b.PreferredTime)
	assert.Equal(t, 30.0, b.Price)
	assert.False(t, b.IsWeekend)
	assert.Equal(t, []string{"customer_rescheduled"}, notifier.kinds())
}

func TestUpdateBookingStatus_RescheduleRequiresTime(t *testing.T) {
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking()), &fakeNotifier{})
	_, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingRescheduled, nil)
	assert.ErrorIs(t, err, ErrRescheduleTimeRequired)

	var zero time.Time
	_, err = s.UpdateBookingStatus("prov-1", "bk-1", models.BookingRescheduled, &zero)
	assert.ErrorIs(t, err, ErrRescheduleTimeRequired)
}

func TestUpdateBookingStatus_SlotNotReturnedByDefault(t *testing.T) {
	svc := testService()
	svc.WeekdaySlotsUsed = 2
	svcRepo := newFakeServiceRepo(svc)
	s := newTestBookingService(svcRepo, newFakeBookingRepo(pendingBooking()), &fakeNotifier{})

	_, err := s.UpdateBookingStatus("cust-1", "bk-1", models.BookingCancelled, nil)
	require.NoError(t, err)

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 2, stored.WeekdaySlotsUsed)
}

func TestUpdateBookingStatus_ReleaseSlotWhenEnabled(t *testing.T) {
	svc := testService()
	svc.WeekdaySlotsUsed = 2
	svcRepo := newFakeServiceRepo(svc)
	s := newTestBookingService(svcRepo, newFakeBookingRepo(pendingBooking()), &fakeNotifier{})
	s.ReleaseSlotOnCancel = true

	_, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingRejected, nil)
	require.NoError(t, err)

	stored, _ := svcRepo.GetByID("svc-1")
	assert.Equal(t, 1, stored.WeekdaySlotsUsed)
}

func TestUpdateBookingStatus_DeletedServiceStillManageable(t *testing.T) {
	// Hard-deleted listing: authority falls back to the booking's stored
	// provider reference, and notifications are skipped.
	notifier := &fakeNotifier{}
	s := newTestBookingService(newFakeServiceRepo(), newFakeBookingRepo(pendingBooking()), notifier)

	b, err := s.UpdateBookingStatus("prov-1", "bk-1", models.BookingConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Empty(t, notifier.kinds())
}

func TestGetProviderBookings_MatchesByServiceToo(t *testing.T) {
	// bk-2's stored provider reference is empty; it must still surface
	// through the service match.
	bk2 := pendingBooking()
	bk2.ID = "bk-2"
	bk2.ProviderID = ""
	s := newTestBookingService(newFakeServiceRepo(testService()), newFakeBookingRepo(pendingBooking(), bk2), &fakeNotifier{})

	bookings, err := s.GetProviderBookings("prov-1", "")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	_, err = s.GetProviderBookings("prov-1", "paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetProviderAnalytics(t *testing.T) {
	now := time.Now()
	mk := func(id string, status models.BookingStatus, price float64, created time.Time) *models.Booking {
		b := pendingBooking()
		b.ID = id
		b.Status = status
		b.Price = price
		b.CreatedAt = created
		return b
	}
	bkRepo := newFakeBookingRepo(
		mk("b1", models.BookingConfirmed, 30, now),
		mk("b2", models.BookingCompleted, 45, now.AddDate(0, 0, -2)),
		mk("b3", models.BookingPending, 30, now),
		mk("b4", models.BookingCancelled, 30, now.AddDate(0, -2, 0)),
	)
	s := newTestBookingService(newFakeServiceRepo(testService()), bkRepo, &fakeNotifier{})

	report, err := s.GetProviderAnalytics("prov-1")
	require.NoError(t, err)

	assert.Equal(t, 4, report.AllTime.Count)
	assert.Equal(t, 75.0, report.AllTime.Earnings)
	assert.Equal(t, 2, report.Daily.Count)
	assert.Equal(t, 30.0, report.Daily.Earnings)
	assert.Equal(t, 1, report.Pending)
	assert.Equal(t, 1, report.ByStatus[string(models.BookingCancelled)])
	assert.Len(t, report.Last7Days, 7)

	today := report.Last7Days[6]
	assert.Equal(t, now.Format("Mon Jan 2"), today.Date)
	assert.Equal(t, 2, today.Bookings)
	assert.Equal(t, 30.0, today.Earnings)
}
