package model

import "time"

// PremiumRecord is the persisted premium state for a user, keyed by the
// email address Stripe reports on the completed checkout session.
type PremiumRecord struct {
	Email        string    `bson:"_id" json:"email"`
	Premium      bool      `bson:"premium" json:"premium"`
	SubscribedAt time.Time `bson:"subscribed_at" json:"subscribed_at"`
	Locale       string    `bson:"locale" json:"locale"`
}
