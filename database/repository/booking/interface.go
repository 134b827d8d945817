package bookingRepo

import (
	"context"

	"luxride/config"
	"luxride/database"
	"luxride/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides access to stored bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListBlockingByDate(ctx context.Context, date string) ([]models.Booking, error)
	AttachSession(ctx context.Context, bookingID, sessionID string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DBName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
