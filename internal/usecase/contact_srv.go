package usecase

import (
	"context"
	"fmt"

	"news-cms/internal/dto/request"
	"news-cms/pkg/mailer"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewContactService(config *utils.Config, mail mailer.Mailer, log *zap.Logger) ContactService {
	return &contactService{
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "contact")),
	}
}

// SubmitContact forwards the message to the site admin and acknowledges the
// sender. Nothing is persisted; the admin inbox is the system of record.
func (s *contactService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.mail.Send(gctx, s.config.Email.AdminEmail, "New contact form message", "contact_admin", map[string]any{
			"Name":    req.Name,
			"Email":   req.Email,
			"Message": req.Message,
		})
	})
	g.Go(func() error {
		return s.mail.Send(gctx, req.Email, "We received your message", "contact_ack", map[string]any{
			"Name": req.Name,
		})
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to deliver contact mail", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("Contact message forwarded", zap.String("email", req.Email))
	return nil
}
