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

const petsCollection = "pets"

type PetRepository struct {
	coll *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{coll: db.Collection(petsCollection)}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	created := *pet
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	return &created, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	var pet domain.Pet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return &pet, nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *PetRepository) List(ctx context.Context) ([]domain.Pet, error) {
	return r.list(ctx, bson.M{})
}

func (r *PetRepository) list(ctx context.Context, filter bson.M) ([]domain.Pet, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cur.Close(ctx)

	var pets []domain.Pet
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("decode pets: %w", err)
	}
	return pets, nil
}

func (r *PetRepository) Update(ctx context.Context, pet *domain.Pet) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pet.ID}, pet)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index.
func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
