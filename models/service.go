package models

import "time"

// ServiceType is the closed set of deal categories.
type ServiceType string

const (
	ServiceTypeHaircut          ServiceType = "Haircut"
	ServiceTypeBarber           ServiceType = "Barber"
	ServiceTypeCleaning         ServiceType = "Cleaning"
	ServiceTypeMassage          ServiceType = "Massage"
	ServiceTypeNails            ServiceType = "Nails"
	ServiceTypeSpa              ServiceType = "Spa"
	ServiceTypePersonalTraining ServiceType = "Personal Training"
	ServiceTypeDogWalking       ServiceType = "Dog Walking"
	ServiceTypeTutoring         ServiceType = "Tutoring"
	ServiceTypePhotography      ServiceType = "Photography"
	ServiceTypeCarDetailing     ServiceType = "Car Detailing"
	ServiceTypeLaundry          ServiceType = "Laundry Service"
	ServiceTypeOther            ServiceType = "Other"
)

// ServiceTypes lists every valid category, in display order.
var ServiceTypes = []ServiceType{
	ServiceTypeHaircut, ServiceTypeBarber, ServiceTypeCleaning,
	ServiceTypeMassage, ServiceTypeNails, ServiceTypeSpa,
	ServiceTypePersonalTraining, ServiceTypeDogWalking, ServiceTypeTutoring,
	ServiceTypePhotography, ServiceTypeCarDetailing, ServiceTypeLaundry,
	ServiceTypeOther,
}

// ValidServiceType reports whether s is one of the closed categories.
func ValidServiceType(s ServiceType) bool {
	for _, t := range ServiceTypes {
		if t == s {
			return true
		}
	}
	return false
}

// AvailabilityWindow describes when a provider offers deal sessions.
// Windows are informational for customers; the slot ledger does not
// enforce them.
type AvailabilityWindow struct {
	Day             string `bson:"day" json:"day"`                         // "Monday".."Sunday"
	StartTime       string `bson:"startTime" json:"startTime"`             // "13:00"
	EndTime         string `bson:"endTime" json:"endTime"`                 // "17:00"
	SessionDuration int    `bson:"sessionDuration" json:"sessionDuration"` // minutes
}

// Service is a provider's discounted off-peak offering (a "deal").
// Weekday and weekend pools carry independent prices and slot ceilings;
// a nil ceiling means the pool is unlimited and its used counter is
// never tracked.
type Service struct {
	ID           string      `bson:"id" json:"id"`
	ProviderID   string      `bson:"provider_id,omitempty" json:"providerId,omitempty"`
	ProviderName string      `bson:"provider_name" json:"providerName"`
	ServiceType  ServiceType `bson:"service_type" json:"serviceType"`
	Description  string      `bson:"description" json:"description"`
	Location     string      `bson:"location" json:"location"`
	Contact      string      `bson:"contact" json:"contact"`
	Email        string      `bson:"email,omitempty" json:"email,omitempty"`

	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`

	// NormalPrice is the non-deal price, used to show the discount.
	NormalPrice *float64 `bson:"normal_price,omitempty" json:"normalPrice,omitempty"`

	WeekdayPrice float64 `bson:"weekday_price" json:"weekdayPrice"`
	WeekendPrice float64 `bson:"weekend_price" json:"weekendPrice"`

	WeekdaySlots     *int `bson:"weekday_slots" json:"weekdaySlots"`
	WeekendSlots     *int `bson:"weekend_slots" json:"weekendSlots"`
	WeekdaySlotsUsed int  `bson:"weekday_slots_used" json:"weekdaySlotsUsed"`
	WeekendSlotsUsed int  `bson:"weekend_slots_used" json:"weekendSlotsUsed"`

	DealActive bool `bson:"deal_active" json:"dealActive"`

	AvailabilityWindows []AvailabilityWindow `bson:"availability_windows,omitempty" json:"availabilityWindows,omitempty"`

	Photos      []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"reviewCount"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// SlotCapacity returns the capacity ceiling and used count for the
// requested pool.
func (s *Service) SlotCapacity(weekend bool) (capacity *int, used int) {
	if weekend {
		return s.WeekendSlots, s.WeekendSlotsUsed
	}
	return s.WeekdaySlots, s.WeekdaySlotsUsed
}
