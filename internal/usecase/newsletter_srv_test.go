package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSubscriberRepo is an in-memory SubscriberRepository.
type fakeSubscriberRepo struct {
	subs    []*entity.Subscriber
	deleted []uuid.UUID
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, sub *entity.Subscriber) error {
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubscriberRepo) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	for _, s := range f.subs {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriberRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscriber, error) {
	for _, s := range f.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriberRepo) FindAll(ctx context.Context, q repository.SubscriberFilter) ([]*entity.Subscriber, error) {
	return f.subs, nil
}

func (f *fakeSubscriberRepo) Count(ctx context.Context, q repository.SubscriberFilter) (int64, error) {
	return int64(len(f.subs)), nil
}

func (f *fakeSubscriberRepo) FindActivePage(ctx context.Context, limit, offset int) ([]*entity.Subscriber, error) {
	var active []*entity.Subscriber
	for _, s := range f.subs {
		if s.IsActive {
			active = append(active, s)
		}
	}
	if offset >= len(active) {
		return nil, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], nil
}

func (f *fakeSubscriberRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	for _, s := range f.subs {
		if s.ID == id {
			s.IsActive = active
			return nil
		}
	}
	return nil
}

func (f *fakeSubscriberRepo) Update(ctx context.Context, sub *entity.Subscriber) error {
	for i, s := range f.subs {
		if s.ID == sub.ID {
			f.subs[i] = sub
		}
	}
	return nil
}

func (f *fakeSubscriberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, s := range f.subs {
		if s.ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return nil
}

func makeSubscriber(email string, active bool) *entity.Subscriber {
	return &entity.Subscriber{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:    email,
		IsActive: active,
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("new email creates and welcomes", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		mail := &fakeMailer{}
		svc := NewNewsletterService(repo, mail, zap.NewNop())

		first := "Ada"
		resp, err := svc.Subscribe(ctx, &request.SubscribeRequest{Email: "ada@example.com", FirstName: &first})
		require.NoError(t, err)
		assert.True(t, resp.IsActive)

		require.Len(t, repo.subs, 1)
		require.Len(t, mail.sent, 1)
		assert.Equal(t, "newsletter_welcome", mail.sent[0].template)
		assert.Equal(t, "Ada", mail.sent[0].data["Name"])
	})

	t.Run("inactive email reactivates", func(t *testing.T) {
		sub := makeSubscriber("back@example.com", false)
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{sub}}
		mail := &fakeMailer{}
		svc := NewNewsletterService(repo, mail, zap.NewNop())

		resp, err := svc.Subscribe(ctx, &request.SubscribeRequest{Email: "back@example.com"})
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.True(t, sub.IsActive)
		assert.Len(t, repo.subs, 1)
		assert.Len(t, mail.sent, 1)
	})

	t.Run("active email conflicts", func(t *testing.T) {
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{makeSubscriber("dup@example.com", true)}}
		svc := NewNewsletterService(repo, &fakeMailer{}, zap.NewNop())

		_, err := svc.Subscribe(ctx, &request.SubscribeRequest{Email: "dup@example.com"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		svc := NewNewsletterService(&fakeSubscriberRepo{}, &fakeMailer{}, zap.NewNop())

		_, err := svc.Subscribe(ctx, &request.SubscribeRequest{Email: "not-an-email"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("active is deactivated", func(t *testing.T) {
		sub := makeSubscriber("leave@example.com", true)
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{sub}}
		svc := NewNewsletterService(repo, &fakeMailer{}, zap.NewNop())

		resp, err := svc.Unsubscribe(ctx, &request.UnsubscribeRequest{Email: "leave@example.com"})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.False(t, sub.IsActive)
	})

	t.Run("already inactive rejected", func(t *testing.T) {
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{makeSubscriber("gone@example.com", false)}}
		svc := NewNewsletterService(repo, &fakeMailer{}, zap.NewNop())

		_, err := svc.Unsubscribe(ctx, &request.UnsubscribeRequest{Email: "gone@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown email is 404", func(t *testing.T) {
		svc := NewNewsletterService(&fakeSubscriberRepo{}, &fakeMailer{}, zap.NewNop())

		_, err := svc.Unsubscribe(ctx, &request.UnsubscribeRequest{Email: "ghost@example.com"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through active subscribers", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		for i := 0; i < 250; i++ {
			repo.subs = append(repo.subs, makeSubscriber(fmt.Sprintf("s%d@example.com", i), true))
		}
		// Inactive subscribers never receive broadcasts.
		repo.subs = append(repo.subs, makeSubscriber("inactive@example.com", false))

		mail := &fakeMailer{}
		svc := NewNewsletterService(repo, mail, zap.NewNop())

		resp, err := svc.Broadcast(ctx, &request.BroadcastRequest{Subject: "Hello", Body: "<p>Hi</p>"})
		require.NoError(t, err)
		assert.Equal(t, 250, resp.Sent)
		assert.Equal(t, 3, resp.Pages)
		assert.Len(t, mail.sent, 250)
		for _, m := range mail.sent {
			assert.NotEqual(t, "inactive@example.com", m.to)
			assert.Equal(t, "newsletter_broadcast", m.template)
		}
	})

	t.Run("no active subscribers sends nothing", func(t *testing.T) {
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{makeSubscriber("off@example.com", false)}}
		mail := &fakeMailer{}
		svc := NewNewsletterService(repo, mail, zap.NewNop())

		resp, err := svc.Broadcast(ctx, &request.BroadcastRequest{Subject: "Hello", Body: "body"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Sent)
		assert.Equal(t, 0, resp.Pages)
		assert.Empty(t, mail.sent)
	})

	t.Run("send failure aborts", func(t *testing.T) {
		repo := &fakeSubscriberRepo{subs: []*entity.Subscriber{makeSubscriber("fail@example.com", true)}}
		mail := &fakeMailer{err: errors.New("smtp down")}
		svc := NewNewsletterService(repo, mail, zap.NewNop())

		_, err := svc.Broadcast(ctx, &request.BroadcastRequest{Subject: "Hello", Body: "body"})
		assert.ErrorIs(t, err, ErrMailDelivery)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		svc := NewNewsletterService(&fakeSubscriberRepo{}, &fakeMailer{}, zap.NewNop())

		_, err := svc.Broadcast(ctx, &request.BroadcastRequest{Body: "body"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestContact(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig()
	cfg.Email.AdminEmail = "admin@example.com"

	t.Run("mails admin and submitter", func(t *testing.T) {
		mail := &fakeMailer{}
		svc := NewContactService(cfg, mail, zap.NewNop())

		err := svc.SubmitContact(ctx, &request.ContactRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "I have a question about the festival program.",
		})
		require.NoError(t, err)
		require.Len(t, mail.sent, 2)

		templates := map[string]string{}
		for _, m := range mail.sent {
			templates[m.template] = m.to
		}
		assert.Equal(t, "admin@example.com", templates["contact_admin"])
		assert.Equal(t, "visitor@example.com", templates["contact_ack"])
	})

	t.Run("mail failure surfaces", func(t *testing.T) {
		svc := NewContactService(cfg, &fakeMailer{err: errors.New("smtp down")}, zap.NewNop())

		err := svc.SubmitContact(ctx, &request.ContactRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "A long enough message body.",
		})
		assert.ErrorIs(t, err, ErrMailDelivery)
	})

	t.Run("short message rejected", func(t *testing.T) {
		svc := NewContactService(cfg, &fakeMailer{}, zap.NewNop())

		err := svc.SubmitContact(ctx, &request.ContactRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "hi",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
