package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMongoDB_InvalidURI(t *testing.T) {
	_, err := NewMongoDB(context.Background(), &DB{URI: "postgres://localhost", ConnectTimeout: time.Second})
	require.ErrorContains(t, err, "parse mongo uri")
}
