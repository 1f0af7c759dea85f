package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

const ownersCollection = "owners"

type OwnerRepository struct {
	coll *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{coll: db.Collection(ownersCollection)}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	created := *owner
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert owner: %w", err)
	}
	return &created, nil
}

func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*domain.Owner, error) {
	var owner domain.Owner
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&owner); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	return &owner, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer cur.Close(ctx)

	var owners []domain.Owner
	if err := cur.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("decode owners: %w", err)
	}
	return owners, nil
}

func (r *OwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": owner.ID}, owner)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}

func (r *OwnerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}
