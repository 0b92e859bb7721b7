// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListByCustomer returns the customer's bookings, newest first.
func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.find(bson.M{"customer_id": customerID})
}

// ListForProvider returns bookings a provider has authority over: the
// stored provider reference matches, or the booking targets one of the
// provider's services. The two may diverge when service ownership
// changes after booking creation.
func (r *MongoBookingRepo) ListForProvider(providerID string, serviceIDs []string, status models.BookingStatus) ([]models.Booking, error) {
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"provider_id": providerID},
			bson.M{"service_id": bson.M{"$in": serviceIDs}},
		},
	}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter)
}

// ListByStatus returns every booking currently in the given state.
func (r *MongoBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	return r.find(bson.M{"status": status})
}

func (r *MongoBookingRepo) count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// CountAll returns the total number of bookings.
func (r *MongoBookingRepo) CountAll() (int64, error) {
	return r.count(bson.M{})
}

// CountByStatus returns the number of bookings in the given state.
func (r *MongoBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	return r.count(bson.M{"status": status})
}

// CountCreatedSince returns the number of bookings created at or after t.
func (r *MongoBookingRepo) CountCreatedSince(t time.Time) (int64, error) {
	return r.count(bson.M{"created_at": bson.M{"$gte": t}})
}

// RevenueTotal aggregates the total booked value across confirmed and
// completed bookings.
func (r *MongoBookingRepo) RevenueTotal() (float64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": bson.A{models.BookingConfirmed, models.BookingCompleted}}}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregation: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
