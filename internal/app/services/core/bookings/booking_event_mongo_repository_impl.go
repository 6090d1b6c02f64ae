package bookings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
)

// BookingEventMongoRepository appends to the status audit trail. Documents
// are only ever inserted and read back in occurrence order.
type BookingEventMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingEventMongoRepository(db *mongo.Client, dbName string) contracts.BookingEventRepository {
	return &BookingEventMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookingEvents),
	}
}

func (repo *BookingEventMongoRepository) InsertEvent(ctx context.Context, event *models.BookingEvent) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, event)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BookingEventMongoRepository) FindEventsByBookingID(ctx context.Context, bookingID string) ([]models.BookingEvent, error) {
	filter := bson.M{"bookingId": bookingID}
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"occurredAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var events []models.BookingEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return events, nil
}
