package handlers

import (
	userRepoPkg "slowday/database/repository/user"
	"slowday/services/admin"
	"slowday/services/booking"
	"slowday/services/deal"
	"slowday/services/lead"
	"slowday/services/user"
)

// HandlerBundle groups all endpoint handlers and the services they
// dispatch to.
type HandlerBundle struct {
	// UserRepo backs the JWT auth middleware's account lookup.
	UserRepo userRepoPkg.UserRepository

	Users    user.UserService
	Deals    deal.DealService
	Bookings booking.BookingService
	Leads    lead.LeadService
	Admin    admin.AdminService
}
