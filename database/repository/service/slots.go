// File: database/repository/service/slots.go
package serviceRepo

import (
	"fmt"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func poolFields(weekend bool) (capField, usedField string) {
	if weekend {
		return "weekend_slots", "weekend_slots_used"
	}
	return "weekday_slots", "weekday_slots_used"
}

// ReserveSlot claims one slot in the requested pool with a single
// conditional update evaluated server-side, so two concurrent requests
// against a pool with one remaining slot cannot both succeed. Unlimited
// pools (nil ceiling) always succeed and are not counted.
func (r *MongoServiceRepo) ReserveSlot(id string, weekend bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	capField, usedField := poolFields(weekend)

	filter := bson.M{
		"id":     id,
		capField: bson.M{"$ne": nil},
		"$expr":  bson.M{"$lt": bson.A{"$" + usedField, "$" + capField}},
	}
	update := bson.M{
		"$inc": bson.M{usedField: 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot for service %s: %w", id, err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	// No conditional match: either the service is missing, the pool is
	// unlimited, or the pool is saturated.
	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if capacity, _ := service.SlotCapacity(weekend); capacity == nil {
		return nil
	}
	return ErrCapacityExceeded
}

// ReleaseSlot returns one slot to the pool. The guard on used > 0 keeps
// the counter from going negative; releasing against an unlimited pool
// is a no-op.
func (r *MongoServiceRepo) ReleaseSlot(id string, weekend bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	capField, usedField := poolFields(weekend)

	filter := bson.M{
		"id":      id,
		capField:  bson.M{"$ne": nil},
		usedField: bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{usedField: -1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release slot for service %s: %w", id, err)
	}
	return nil
}
