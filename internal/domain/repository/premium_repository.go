package repository

import (
	"context"
	"time"

	"github.com/YATI3/memoregen-backend/internal/domain/model"
)

// PremiumRepository defines premium record operations against the document store.
type PremiumRepository interface {
	// Get returns the record for the given email, or errors.ErrRecordNotFound
	// when none exists. Transport failures wrap errors.ErrStoreUnavailable so
	// callers can tell "not premium" apart from "store down".
	Get(ctx context.Context, email string) (*model.PremiumRecord, error)

	// UpsertMerge marks the email premium with the given locale. Fields not
	// named here are left untouched on an existing record, and subscribedAt
	// is written only when the record is first created.
	UpsertMerge(ctx context.Context, email, locale string, subscribedAt time.Time) error

	// WriteSentinel writes a diagnostic document so liveness checks can
	// observe store reachability.
	WriteSentinel(ctx context.Context) error
}
