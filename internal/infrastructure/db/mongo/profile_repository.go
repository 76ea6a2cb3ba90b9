package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arabshield/platform-api/internal/core/domain"
)

const profileCollection = "profiles"

type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profileCollection)}
}

type profileDoc struct {
	UserID      string    `bson:"_id"`
	Role        string    `bson:"role"`
	DisplayName string    `bson:"display_name"`
	Email       string    `bson:"email"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d profileDoc) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:      d.UserID,
		Role:        domain.Role(d.Role),
		DisplayName: d.DisplayName,
		Email:       d.Email,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *MongoProfileRepository) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var doc profileDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts a new profile. The _id uniqueness constraint guarantees the
// create-once contract even under concurrent first logins.
func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	doc := profileDoc{
		UserID:      profile.UserID,
		Role:        string(profile.Role),
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		CreatedAt:   profile.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepository) SetRole(ctx context.Context, userID string, role domain.Role) error {
	res, err := r.coll.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *MongoProfileRepository) ListAdmins(ctx context.Context) ([]*domain.UserProfile, error) {
	filter := bson.M{"role": bson.M{"$in": []string{
		string(domain.RoleOwner),
		string(domain.RoleAdmin),
	}}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*domain.UserProfile
	for cursor.Next(ctx) {
		var doc profileDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		profiles = append(profiles, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return profiles, nil
}
