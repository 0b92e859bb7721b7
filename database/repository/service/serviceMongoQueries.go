// File: database/repository/service/serviceMongoQueries.go
package serviceRepo

import (
	"fmt"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoServiceRepo) find(filter bson.M) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// ListActive returns active services, newest first, optionally filtered
// by category and a case-insensitive location match.
func (r *MongoServiceRepo) ListActive(q ListQuery) ([]models.Service, error) {
	filter := bson.M{"is_active": true}
	if q.ServiceType != "" {
		filter["service_type"] = q.ServiceType
	}
	if q.Location != "" {
		filter["location"] = primitive.Regex{Pattern: q.Location, Options: "i"}
	}
	return r.find(filter)
}

// ListByProvider returns every service owned by the given provider.
func (r *MongoServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	return r.find(bson.M{"provider_id": providerID})
}

// ProviderServiceIDs returns the IDs of all services owned by the
// provider, used to resolve provider authority over bookings.
func (r *MongoServiceRepo) ProviderServiceIDs(providerID string) ([]string, error) {
	services, err := r.ListByProvider(providerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids, nil
}
