package contactRepo

import (
	"context"
	"fmt"

	"luxride/models"
)

// Create inserts a new contact submission and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, submission models.ContactSubmission) (string, error) {
	if _, err := r.coll.InsertOne(ctx, submission); err != nil {
		return "", fmt.Errorf("failed to insert contact submission: %w", err)
	}
	return submission.ID, nil
}
