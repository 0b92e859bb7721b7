// File: database/repository/lead/leadMongoCrud.go
package leadRepo

import (
	"fmt"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new lead document.
func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// Update modifies an existing lead document.
func (r *MongoLeadRepo) Update(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lead.UpdatedAt = time.Now()
	filter := bson.M{"id": lead.ID}
	update := bson.M{"$set": lead}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lead with id %s: %w", lead.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead with id %s: %w", lead.ID, ErrNotFound)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a lead document.
func (r *MongoLeadRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lead with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a lead document by its ID.
func (r *MongoLeadRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete lead with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lead with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a lead by its ID.
func (r *MongoLeadRepo) GetByID(id string) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead with id %s: %w", id, err)
	}
	return &lead, nil
}

// List returns leads matching the staff funnel filters, newest first.
func (r *MongoLeadRepo) List(q ListQuery) ([]models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.AssigneeID != "" {
		filter["assignee_id"] = q.AssigneeID
	}
	if q.City != "" {
		filter["city"] = primitive.Regex{Pattern: q.City, Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}

// SetStatus moves a lead to the given funnel state.
func (r *MongoLeadRepo) SetStatus(id string, status models.LeadStatus) error {
	return r.UpdateSetDocument(id, bson.M{"status": status})
}
