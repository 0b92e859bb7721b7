// File: database/repository/user/userMongoQueries.go
package userRepo

import (
	"fmt"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by its ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByEmail retrieves a user by email.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

// GetBySetupToken retrieves a provider account by its hashed setup token.
func (r *MongoUserRepo) GetBySetupToken(tokenHash string) (*models.User, error) {
	return r.findOne(bson.M{"provider_setup_token": tokenHash})
}

func (r *MongoUserRepo) count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountAll returns the total number of accounts.
func (r *MongoUserRepo) CountAll() (int64, error) {
	return r.count(bson.M{})
}

// CountByAccountType returns the number of accounts of the given type.
func (r *MongoUserRepo) CountByAccountType(accountType models.AccountType) (int64, error) {
	return r.count(bson.M{"account_type": accountType})
}

// CountCreatedSince returns the number of accounts created at or after t.
func (r *MongoUserRepo) CountCreatedSince(t time.Time) (int64, error) {
	return r.count(bson.M{"created_at": bson.M{"$gte": t}})
}

// CountActiveSince returns the number of accounts touched at or after t,
// used as the active-user measure in back-office analytics.
func (r *MongoUserRepo) CountActiveSince(t time.Time) (int64, error) {
	return r.count(bson.M{"updated_at": bson.M{"$gte": t}})
}
