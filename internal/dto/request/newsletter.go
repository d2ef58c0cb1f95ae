package request

type SubscribeRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type BroadcastRequest struct {
	Subject string `json:"subject" validate:"required,min=3,max=255"`
	Body    string `json:"body" validate:"required"`
}

type SubscriberListQuery struct {
	PaginatedRequest
	Search   string
	IsActive *bool
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}
