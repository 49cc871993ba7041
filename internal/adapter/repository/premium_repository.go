package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	domainErrors "github.com/YATI3/memoregen-backend/internal/domain/errors"
	"github.com/YATI3/memoregen-backend/internal/domain/model"
)

const diagnosticsCollection = "diagnostics"

// PremiumRepository implements repository.PremiumRepository on MongoDB.
// The email is the document id, so upserts are atomic per key.
type PremiumRepository struct {
	premium     *mongo.Collection
	diagnostics *mongo.Collection
	timeout     time.Duration
	logger      *zap.Logger
}

// NewPremiumRepository creates a new premium repository
func NewPremiumRepository(db *mongo.Database, collection string, timeout time.Duration, logger *zap.Logger) *PremiumRepository {
	return &PremiumRepository{
		premium:     db.Collection(collection),
		diagnostics: db.Collection(diagnosticsCollection),
		timeout:     timeout,
		logger:      logger,
	}
}

// Get returns the premium record for the email. ErrRecordNotFound means the
// identity was simply never written; any other failure wraps
// ErrStoreUnavailable so callers never mistake an outage for "not premium".
func (r *PremiumRepository) Get(ctx context.Context, email string) (*model.PremiumRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var record model.PremiumRecord
	err := r.premium.FindOne(ctx, bson.M{"_id": email}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domainErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", domainErrors.ErrStoreUnavailable, email, err)
	}

	return &record, nil
}

// premiumUpdate builds the upsert document. subscribed_at lives under
// $setOnInsert, not $set: redelivery of the same event must keep the first
// subscription timestamp.
func premiumUpdate(locale string, subscribedAt time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"premium": true,
			"locale":  locale,
		},
		"$setOnInsert": bson.M{
			"subscribed_at": subscribedAt,
		},
	}
}

// UpsertMerge marks the email premium. Merge semantics: only the named
// fields are written, the record is created when absent, and subscribed_at
// is set on insert only so webhook redelivery keeps the first timestamp.
func (r *PremiumRepository) UpsertMerge(ctx context.Context, email, locale string, subscribedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.premium.UpdateOne(ctx, bson.M{"_id": email}, premiumUpdate(locale, subscribedAt), options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: upsert %s: %v", domainErrors.ErrStoreUnavailable, email, err)
	}

	r.logger.Info("Premium record upserted",
		zap.String("email", email),
		zap.String("locale", locale),
		zap.Int64("matched", result.MatchedCount),
		zap.Int64("upserted", result.UpsertedCount),
	)

	return nil
}

// WriteSentinel upserts a diagnostic document so the debug endpoint can
// observe store reachability.
func (r *PremiumRepository) WriteSentinel(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"check_id":   uuid.NewString(),
			"checked_at": time.Now().UTC(),
		},
	}

	_, err := r.diagnostics.UpdateOne(ctx, bson.M{"_id": "sentinel"}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: sentinel write: %v", domainErrors.ErrStoreUnavailable, err)
	}

	return nil
}
