package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawdesk/clinic-api/internal/pkg/config"
)

const connectTimeout = 10 * time.Second

// Connect opens a client against the configured MongoDB deployment, verifies
// it with a ping, and returns the clinic database handle along with the
// client so the caller can disconnect on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes bootstraps every index the repositories rely on: the unique
// email/username constraints the auth core depends on and the lookup indexes
// behind the list filters. Run once at startup, before serving traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewPetRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("pet indexes: %w", err)
	}
	if err := NewAppointmentRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("appointment indexes: %w", err)
	}
	return nil
}
