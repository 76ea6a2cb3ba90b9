package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arabshield/platform-api/internal/core/domain"
)

const auditCollection = "audit_logs"

// MongoAuditRepository is the append-only audit trail. Nothing here updates
// or deletes entries.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID        string                        `bson:"_id"`
	Action    string                        `bson:"action"`
	UserID    string                        `bson:"userId"`
	UserEmail string                        `bson:"userEmail"`
	Timestamp time.Time                     `bson:"timestamp"`
	Target    string                        `bson:"target"`
	Changes   map[string]domain.FieldChange `bson:"changes"`
	IP        string                        `bson:"ip,omitempty"`
	UserAgent string                        `bson:"userAgent,omitempty"`
}

// Append stores one entry and returns its generated id.
func (r *MongoAuditRepository) Append(ctx context.Context, entry *domain.AuditLogEntry) (string, error) {
	doc := auditDoc{
		ID:        uuid.NewString(),
		Action:    entry.Action,
		UserID:    entry.UserID,
		UserEmail: entry.UserEmail,
		Timestamp: entry.Timestamp,
		Target:    entry.Target,
		Changes:   entry.Changes,
		IP:        entry.IP,
		UserAgent: entry.UserAgent,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("append audit entry: %w", err)
	}
	return doc.ID, nil
}

// List returns the most recent entries, newest first.
func (r *MongoAuditRepository) List(ctx context.Context, limit int64) ([]*domain.AuditLogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.AuditLogEntry
	for cursor.Next(ctx) {
		var doc auditDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditLogEntry{
			ID:        doc.ID,
			Action:    doc.Action,
			UserID:    doc.UserID,
			UserEmail: doc.UserEmail,
			Timestamp: doc.Timestamp,
			Target:    doc.Target,
			Changes:   doc.Changes,
			IP:        doc.IP,
			UserAgent: doc.UserAgent,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
