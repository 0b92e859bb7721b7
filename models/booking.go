package models

import "time"

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingRescheduled BookingStatus = "rescheduled"
	BookingRejected    BookingStatus = "rejected"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the enumerated states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRescheduled,
		BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCompleted || s == BookingCancelled
}

// Booking is a customer's appointment request against a service deal.
// Price and IsWeekend are snapshots taken at creation time; they are
// never recomputed, not even when the booking is rescheduled or the
// service prices change.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	CustomerID      string        `bson:"customer_id" json:"customerId"`
	ServiceID       string        `bson:"service_id" json:"serviceId"`
	ProviderID      string        `bson:"provider_id,omitempty" json:"providerId,omitempty"`
	CustomerName    string        `bson:"customer_name" json:"customerName"`
	CustomerContact string        `bson:"customer_contact" json:"customerContact"`
	PreferredTime   time.Time     `bson:"preferred_time" json:"preferredTime"`
	Notes           string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`
	Price           float64       `bson:"price" json:"price"`
	IsWeekend       bool          `bson:"is_weekend" json:"isWeekend"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}
