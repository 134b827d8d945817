package contactRepo

import (
	"context"

	"luxride/config"
	"luxride/database"
	"luxride/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository persists contact inquiries. Submissions are write-once;
// reads happen out-of-band (back-office export).
type ContactRepository interface {
	Create(ctx context.Context, submission models.ContactSubmission) (string, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a new ContactRepository instance using MongoDB.
func NewMongoContactRepo() ContactRepository {
	db := database.MongoClient.Database(config.AppConfig.DBName)
	return &mongoContactRepo{
		coll: db.Collection("contact_submissions"),
	}
}
