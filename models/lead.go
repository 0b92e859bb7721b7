package models

import "time"

// LeadStatus enumerates the CRM funnel states for a prospective provider.
type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadContacted  LeadStatus = "contacted"
	LeadInterested LeadStatus = "interested"
	LeadOnboarded  LeadStatus = "onboarded"
	LeadRejected   LeadStatus = "rejected"
)

// ValidLeadStatus reports whether s is one of the funnel states.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadInterested, LeadOnboarded, LeadRejected:
		return true
	}
	return false
}

// Lead is a prospective provider business tracked through the sales
// funnel until it is converted into a live User + Service pair or
// rejected.
type Lead struct {
	ID           string     `bson:"id" json:"id"`
	BusinessName string     `bson:"business_name" json:"businessName"`
	ContactName  string     `bson:"contact_name,omitempty" json:"contactName,omitempty"`
	Phone        string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string     `bson:"email,omitempty" json:"email,omitempty"`
	Address      string     `bson:"address,omitempty" json:"address,omitempty"`
	Website      string     `bson:"website,omitempty" json:"website,omitempty"`
	ServiceType  string     `bson:"service_type,omitempty" json:"serviceType,omitempty"` // free text, mapped on conversion
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`  // becomes the service listing copy
	City         string     `bson:"city,omitempty" json:"city,omitempty"`
	Status       LeadStatus `bson:"status" json:"status"`
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`

	// Price is the business's normal asking price; DiscountPrice is the
	// deal price the lead agreed to offer.
	Price         *float64 `bson:"price,omitempty" json:"price,omitempty"`
	DiscountPrice *float64 `bson:"discount_price,omitempty" json:"discountPrice,omitempty"`

	// Days the lead intends to run the deal ("Mon".."Sun"). Recorded for
	// the sales funnel only; conversion prices both pools identically.
	Days []string `bson:"days,omitempty" json:"days,omitempty"`

	AssigneeID string    `bson:"assignee_id,omitempty" json:"assigneeId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
