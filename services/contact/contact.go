package contact

import (
	"context"
	"time"

	contactRepo "luxride/database/repository/contact"
	"luxride/models"
	"luxride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService records contact inquiries.
type ContactService interface {
	CreateContact(ctx context.Context, input models.ContactInput) (*models.ContactSubmission, error)
}

// DefaultContactService is the production implementation backed by the
// contact repository.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// CreateContact persists a write-once contact submission.
func (s *DefaultContactService) CreateContact(ctx context.Context, input models.ContactInput) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.Repo.Create(ctx, submission); err != nil {
		utils.GetLogger().Error("failed to persist contact submission", zap.Error(err))
		return nil, err
	}
	return &submission, nil
}
