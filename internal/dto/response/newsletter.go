package response

import (
	"time"

	"news-cms/internal/data/entity"
)

type SubscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSubscriber(s *entity.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:        s.ID.String(),
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromSubscribers(items []*entity.Subscriber) []SubscriberResponse {
	out := make([]SubscriberResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSubscriber(s))
	}
	return out
}

// BroadcastResponse summarizes a bulk newsletter send.
type BroadcastResponse struct {
	Sent  int `json:"sent"`
	Pages int `json:"pages"`
}
