package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"luxride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new payment transaction and returns its ID.
func (repo *MongoPaymentRepo) Create(ctx context.Context, txn models.PaymentTransaction) (string, error) {
	if _, err := repo.txnColl.InsertOne(ctx, txn); err != nil {
		return "", fmt.Errorf("failed to insert payment transaction: %w", err)
	}
	return txn.ID, nil
}

// GetBySessionID returns the transaction for a checkout session.
func (repo *MongoPaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	if err := repo.txnColl.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// MarkSessionPaid applies the paid transition for a session. The transaction
// update is a conditional write guarded by the current non-paid status, so
// concurrent poll and webhook calls on the same session converge to exactly
// one effective transition. Both writes run in a single Mongo transaction so
// a crash cannot leave the transaction paid and the booking pending.
func (repo *MongoPaymentRepo) MarkSessionPaid(ctx context.Context, sessionID string) (bool, error) {
	client := repo.txnColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var transitioned bool
	txnFn := func(sc mongo.SessionContext) error {
		res, err := repo.txnColl.UpdateOne(sc,
			bson.M{
				"session_id":     sessionID,
				"payment_status": bson.M{"$ne": models.PaymentStatusPaid},
			},
			bson.M{"$set": bson.M{
				"payment_status": models.PaymentStatusPaid,
				"updated_at":     time.Now().UTC(),
			}},
		)
		if err != nil {
			return fmt.Errorf("transaction update failed: %w", err)
		}
		if res.ModifiedCount == 0 {
			// Already paid, or no transaction exists for this session.
			return nil
		}
		transitioned = true

		if _, err := repo.bookingColl.UpdateOne(sc,
			bson.M{"session_id": sessionID},
			bson.M{"$set": bson.M{"payment_status": models.PaymentStatusPaid}},
		); err != nil {
			return fmt.Errorf("booking update failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return false, fmt.Errorf("paid transition failed: %w", err)
	}

	return transitioned, nil
}
