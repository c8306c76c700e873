package feedback

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownCategory(t *testing.T) {
	t.Parallel()
	for _, category := range Categories() {
		assert.True(t, KnownCategory(category), category)
	}

	assert.False(t, KnownCategory(""))
	assert.False(t, KnownCategory("SPEED_PERFORMANCE"))
	assert.False(t, KnownCategory("bugs"))
}

func TestRecord_JSONHasNoWalletField(t *testing.T) {
	t.Parallel()
	record := Record{
		ID:                  "00000000-0000-0000-0000-000000000001",
		Text:                "note",
		Category:            CategoryOther,
		PaymentAmount:       "1.1 MON",
		AnonymizedTimestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.False(t, strings.Contains(strings.ToLower(string(data)), "wallet"))
	// пустой хэндл не сериализуется вовсе
	assert.False(t, strings.Contains(string(data), "xHandle"))
}
