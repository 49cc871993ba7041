package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPremiumUpdate_MergesWithoutTouchingFirstTimestamp(t *testing.T) {
	subscribedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	update := premiumUpdate("en", subscribedAt)

	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, true, set["premium"])
	assert.Equal(t, "en", set["locale"])

	// subscribed_at must only ever be written on insert; putting it in $set
	// would move the first-subscription timestamp on every redelivery.
	assert.NotContains(t, set, "subscribed_at")

	onInsert, ok := update["$setOnInsert"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, subscribedAt, onInsert["subscribed_at"])
}

func TestPremiumUpdate_NeverErasesUnspecifiedFields(t *testing.T) {
	update := premiumUpdate("fr", time.Now().UTC())

	// Merge semantics: only update operators, never a full document replace,
	// so fields outside $set/$setOnInsert survive on existing records.
	for key := range update {
		assert.Contains(t, []string{"$set", "$setOnInsert"}, key)
	}
}
