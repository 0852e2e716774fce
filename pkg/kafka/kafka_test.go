package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig_Enabled(t *testing.T) {
	require.False(t, Config{}.Enabled())
	require.True(t, Config{Addrs: []string{"localhost:9092"}}.Enabled())
}

func TestBookEvent_JSON(t *testing.T) {
	ev := BookEvent{
		ID:        "e1",
		Type:      EventBookDeleted,
		BookID:    "b1",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"e1","type":"BOOK_DELETED","bookId":"b1","reviews":0,"timestamp":"2024-01-02T03:04:05Z"}`, string(data))
}
