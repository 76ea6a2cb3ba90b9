package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arabshield/platform-api/internal/core/domain"
)

const settingsCollection = "settings"

// MongoSettingsRepository persists the single global settings document under
// a fixed id and serves live updates through a change stream.
type MongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID                        string    `bson:"_id"`
	SiteName                  string    `bson:"siteName"`
	MaintenanceMode           bool      `bson:"maintenanceMode"`
	AllowNewRegistrations     bool      `bson:"allowNewRegistrations"`
	DefaultUserRole           string    `bson:"defaultUserRole"`
	EmailNotificationsEnabled bool      `bson:"emailNotificationsEnabled"`
	MaxProjectsPerUser        int       `bson:"maxProjectsPerUser"`
	UpdatedAt                 time.Time `bson:"updatedAt,omitempty"`
	UpdatedBy                 string    `bson:"updatedBy,omitempty"`
}

func (d settingsDoc) toDomain() domain.SystemSettings {
	return domain.SystemSettings{
		SiteName:                  d.SiteName,
		MaintenanceMode:           d.MaintenanceMode,
		AllowNewRegistrations:     d.AllowNewRegistrations,
		DefaultUserRole:           domain.Role(d.DefaultUserRole),
		EmailNotificationsEnabled: d.EmailNotificationsEnabled,
		MaxProjectsPerUser:        d.MaxProjectsPerUser,
	}
}

// Get retrieves the stored settings record.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	var doc settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": domain.SettingsID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	settings := doc.toDomain()
	return &settings, nil
}

// Merge applies a partial field update, upserting the record when absent.
// updatedAt is assigned by the server at commit time via $currentDate.
func (r *MongoSettingsRepository) Merge(ctx context.Context, fields map[string]any, updatedBy string) error {
	set := bson.M{"updatedBy": updatedBy}
	for k, v := range fields {
		set[k] = v
	}

	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updatedAt": true},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateByID(ctx, domain.SettingsID, update, opts); err != nil {
		return fmt.Errorf("merge settings: %w", err)
	}
	return nil
}

// Watch opens a change stream scoped to the settings document and pumps full
// post-update records to onNext until the stream ends. The returned
// unsubscribe func is idempotent.
func (r *MongoSettingsRepository) Watch(
	ctx context.Context,
	onNext func(domain.SystemSettings),
	onError func(error),
) (func(), error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "fullDocument._id", Value: domain.SettingsID},
		}}},
	}

	streamCtx, cancel := context.WithCancel(ctx)
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(streamCtx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch settings: %w", err)
	}

	go func() {
		defer stream.Close(context.Background())

		for stream.Next(streamCtx) {
			var event struct {
				FullDocument settingsDoc `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				onError(fmt.Errorf("decode settings event: %w", err))
				return
			}
			onNext(event.FullDocument.toDomain())
		}

		// A cancelled context is a deliberate teardown, not a failure.
		if err := stream.Err(); err != nil && streamCtx.Err() == nil {
			onError(fmt.Errorf("settings stream: %w", err))
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}
