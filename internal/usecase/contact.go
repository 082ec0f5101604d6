package usecase

import (
	"context"

	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/logger"
)

type contactUsecase struct {
	mailer domain.ContactMailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.ContactMailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// Submit runs the spam check and forwards genuine submissions to the mailer.
// Exactly one mailer call per non-spam submission, no retries.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) domain.EmailResult {
	// A filled honeypot means an automated submitter blindly completed a
	// field no human can see. Return the same success result as a real send
	// so the spam source gets no signal it was filtered. The name is logged
	// for the audit trail.
	if req.Honeypot != "" {
		logger.Log.Info("Honeypot triggered - likely spam", "name", req.Name)
		return domain.EmailResult{Success: true}
	}

	return uc.mailer.SendContactEmail(ctx, req)
}
