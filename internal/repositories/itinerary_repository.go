package repositories

import (
	"context"
	"errors"

	"tripplanner_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrItineraryNotFound = errors.New("itinerary not found")

// ItineraryRepository stores the day-plan documents. Documents are keyed by
// generated ObjectIDs whose hex form is what Plan rows reference.
type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *models.Itinerary) (string, error)
	FindByID(ctx context.Context, id string) (*models.Itinerary, error)
	Replace(ctx context.Context, id string, itinerary *models.Itinerary) error
}

type ItineraryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewItineraryRepository(collection *mongo.Collection) ItineraryRepository {
	return &ItineraryRepositoryImpl{collection: collection}
}

// Insert persists a new document and returns its generated hex id.
func (r *ItineraryRepositoryImpl) Insert(ctx context.Context, itinerary *models.Itinerary) (string, error) {
	itinerary.ID = primitive.NilObjectID

	result, err := r.collection.InsertOne(ctx, itinerary)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	itinerary.ID = oid
	return oid.Hex(), nil
}

func (r *ItineraryRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Itinerary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrItineraryNotFound
	}

	var itinerary models.Itinerary
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItineraryNotFound
		}
		return nil, err
	}
	return &itinerary, nil
}

// Replace overwrites every content field of an existing document.
func (r *ItineraryRepositoryImpl) Replace(ctx context.Context, id string, itinerary *models.Itinerary) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrItineraryNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":         itinerary.Title,
		"description":   itinerary.Description,
		"locations":     itinerary.Locations,
		"allTransports": itinerary.Transports,
		"suggestions":   itinerary.Suggestions,
		"itineraryId":   itinerary.ItineraryID,
		"totalPrice":    itinerary.TotalPrice,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrItineraryNotFound
	}
	return nil
}
