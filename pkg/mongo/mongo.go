package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultDatabase = "bookreviews"

type DB struct {
	URI            string        `yaml:"uri" envconfig:"MONGO_URI" default:"mongodb://localhost:27017/bookreviews"`
	Collection     string        `yaml:"collection" envconfig:"MONGO_COLLECTION" default:"book"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

// NewMongoDB connects and pings the server. The database name comes from
// the uri path, falling back to bookreviews.
func NewMongoDB(ctx context.Context, cfg *DB) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return nil, errors.Wrap(err, "parse mongo uri")
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "mongo.Connect")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}
	return client.Database(dbName), nil
}

func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
