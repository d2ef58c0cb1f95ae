package usecase

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"
	"news-cms/internal/dto/response"
	"news-cms/pkg/mailer"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// broadcastPageSize bounds how many subscribers are loaded and mailed at once.
const broadcastPageSize = 100

type NewsletterService interface {
	Subscribe(ctx context.Context, req *request.SubscribeRequest) (*response.SubscriberResponse, error)
	Unsubscribe(ctx context.Context, req *request.UnsubscribeRequest) (*response.SubscriberResponse, error)
	GetSubscribers(ctx context.Context, q *request.SubscriberListQuery) (*response.PaginatedResponse[response.SubscriberResponse], error)
	DeleteSubscriber(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
	Broadcast(ctx context.Context, req *request.BroadcastRequest) (*response.BroadcastResponse, error)
}

type newsletterService struct {
	subscribers repository.SubscriberRepository
	mail        mailer.Mailer
	log         *zap.Logger
}

func NewNewsletterService(subscribers repository.SubscriberRepository, mail mailer.Mailer, log *zap.Logger) NewsletterService {
	return &newsletterService{
		subscribers: subscribers,
		mail:        mail,
		log:         log.With(zap.String("service", "newsletter")),
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *request.SubscribeRequest) (*response.SubscriberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Subscribe validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.subscribers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}

	var sub *entity.Subscriber
	switch {
	case existing == nil:
		now := time.Now()
		sub = &entity.Subscriber{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsActive:  true,
		}
		if err := s.subscribers.Create(ctx, sub); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil, fmt.Errorf("%w: email is already subscribed", ErrConflict)
			}
			return nil, fmt.Errorf("create subscriber: %w", err)
		}
	case !existing.IsActive:
		// Unsubscribed rows are kept, so a repeat subscribe reactivates.
		if err := s.subscribers.SetActive(ctx, existing.ID, true); err != nil {
			return nil, fmt.Errorf("reactivate subscriber: %w", err)
		}
		existing.IsActive = true
		sub = existing
	default:
		return nil, fmt.Errorf("%w: email is already subscribed", ErrConflict)
	}

	name := "there"
	if sub.FirstName != nil && *sub.FirstName != "" {
		name = *sub.FirstName
	}
	if err := s.mail.Send(ctx, sub.Email, "Welcome to the newsletter", "newsletter_welcome", map[string]any{
		"Name": name,
	}); err != nil {
		s.log.Error("Failed to send newsletter welcome", zap.Error(err), zap.String("email", sub.Email))
		return nil, fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("Subscriber added", zap.String("subscriber_id", sub.ID.String()))

	resp := response.FromSubscriber(sub)
	return &resp, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req *request.UnsubscribeRequest) (*response.SubscriberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	sub, err := s.subscribers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscriber", ErrNotFound)
	}
	if !sub.IsActive {
		return nil, fmt.Errorf("%w: email is not subscribed", ErrValidation)
	}

	if err := s.subscribers.SetActive(ctx, sub.ID, false); err != nil {
		return nil, fmt.Errorf("unsubscribe: %w", err)
	}
	sub.IsActive = false

	s.log.Info("Subscriber deactivated", zap.String("subscriber_id", sub.ID.String()))

	resp := response.FromSubscriber(sub)
	return &resp, nil
}

func (s *newsletterService) GetSubscribers(ctx context.Context, q *request.SubscriberListQuery) (*response.PaginatedResponse[response.SubscriberResponse], error) {
	filter := repository.SubscriberFilter{
		Search:   q.Search,
		IsActive: q.IsActive,
		Limit:    q.Limit(),
		Offset:   q.Offset(),
	}

	items, err := s.subscribers.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	total, err := s.subscribers.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	return response.NewPaginatedResponse(response.FromSubscribers(items), q.Page, q.Limit(), total), nil
}

func (s *newsletterService) DeleteSubscriber(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	sub, err := s.subscribers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscriber", ErrNotFound)
	}

	if err := s.subscribers.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete subscriber: %w", err)
	}

	return &response.DeleteResponse{
		ID:    sub.ID.String(),
		Email: sub.Email,
	}, nil
}

// Broadcast walks active subscribers one page at a time and fans the sends
// out concurrently within each page. A failed send aborts the run so the
// caller can retry instead of silently dropping recipients.
func (s *newsletterService) Broadcast(ctx context.Context, req *request.BroadcastRequest) (*response.BroadcastResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	sent := 0
	pages := 0
	for offset := 0; ; offset += broadcastPageSize {
		page, err := s.subscribers.FindActivePage(ctx, broadcastPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("load broadcast page: %w", err)
		}
		if len(page) == 0 {
			break
		}
		pages++

		g, gctx := errgroup.WithContext(ctx)
		for _, sub := range page {
			g.Go(func() error {
				return s.mail.Send(gctx, sub.Email, req.Subject, "newsletter_broadcast", map[string]any{
					"Subject": req.Subject,
					"Body":    template.HTML(req.Body),
				})
			})
		}
		if err := g.Wait(); err != nil {
			s.log.Error("Broadcast aborted", zap.Error(err), zap.Int("sent", sent))
			return nil, fmt.Errorf("%w: %v", ErrMailDelivery, err)
		}
		sent += len(page)

		if len(page) < broadcastPageSize {
			break
		}
	}

	s.log.Info("Broadcast complete", zap.Int("sent", sent), zap.Int("pages", pages))

	return &response.BroadcastResponse{Sent: sent, Pages: pages}, nil
}
