package paymentRepo

import (
	"context"

	"luxride/config"
	"luxride/database"
	"luxride/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository persists payment transactions and drives the paid-state
// transition shared with the bookings collection.
type PaymentRepository interface {
	Create(ctx context.Context, txn models.PaymentTransaction) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	// MarkSessionPaid transitions the transaction for sessionID to "paid",
	// together with its booking, and reports whether a transition happened.
	// A session already paid is a no-op returning false.
	MarkSessionPaid(ctx context.Context, sessionID string) (bool, error)
	EnsureIndexes() error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds the
// bookings collection as well because the paid transition spans both.
type MongoPaymentRepo struct {
	txnColl     *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo constructs a new instance of MongoPaymentRepo.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database(config.AppConfig.DBName)
	return &MongoPaymentRepo{
		txnColl:     db.Collection("payment_transactions"),
		bookingColl: db.Collection("bookings"),
	}
}
