package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"magasin/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAdherentRepository struct {
	collection *mongo.Collection
}

func NewMongoAdherentRepository(db *mongo.Database) AdherentRepository {
	return &mongoAdherentRepository{
		collection: db.Collection("adherents"),
	}
}

func (r *mongoAdherentRepository) Create(ctx context.Context, adherent *domain.Adherent) (*domain.Adherent, error) {
	if adherent.ID.IsZero() {
		adherent.ID = primitive.NewObjectID()
	}
	if adherent.DateJoined.IsZero() {
		adherent.DateJoined = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, adherent)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create adherent: %w", err)
	}

	return adherent, nil
}

func (r *mongoAdherentRepository) GetByID(ctx context.Context, id string) (*domain.Adherent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	var adherent domain.Adherent
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&adherent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdherentNotFound
		}
		return nil, fmt.Errorf("failed to get adherent: %w", err)
	}

	return &adherent, nil
}

func (r *mongoAdherentRepository) Find(ctx context.Context, query ListQuery) ([]domain.Adherent, int64, error) {
	filter := searchFilter(query.Search, "name", "email")

	opts := options.Find().SetSkip(query.Skip()).SetLimit(query.Limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find adherents: %w", err)
	}
	defer cursor.Close(ctx)

	var adherents []domain.Adherent
	if err := cursor.All(ctx, &adherents); err != nil {
		return nil, 0, fmt.Errorf("failed to decode adherents: %w", err)
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count adherents: %w", err)
	}

	return adherents, count, nil
}

func (r *mongoAdherentRepository) Update(ctx context.Context, id string, update domain.AdherentUpdate) (*domain.Adherent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var adherent domain.Adherent
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&adherent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdherentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update adherent: %w", err)
	}

	return &adherent, nil
}

func (r *mongoAdherentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid adherent id %q: %w", id, err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete adherent: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrAdherentNotFound
	}

	return nil
}
