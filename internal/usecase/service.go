package usecase

import (
	"news-cms/internal/data/repository"
	"news-cms/pkg/mailer"
	"news-cms/pkg/media"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

// UploadFile is an in-memory file buffer taken from a multipart form.
type UploadFile struct {
	Data     []byte
	Filename string
}

type Service struct {
	Auth              AuthService
	User              UserService
	News              NewsService
	Blog              BlogService
	Event             EventService
	FestivalEvent     FestivalEventService
	FestivalHighlight FestivalHighlightService
	Transportation    TransportationService
	Newsletter        NewsletterService
	Contact           ContactService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, uploader media.Uploader, log *zap.Logger) *Service {
	return &Service{
		Auth:              NewAuthService(repo.User, config, mail, log),
		User:              NewUserService(repo.User, log),
		News:              NewNewsService(repo.News, uploader, log),
		Blog:              NewBlogService(repo.Blog, uploader, log),
		Event:             NewEventService(repo.Event, log),
		FestivalEvent:     NewFestivalEventService(repo.FestivalEvent, log),
		FestivalHighlight: NewFestivalHighlightService(repo.FestivalHighlight, log),
		Transportation:    NewTransportationService(repo.Transportation, log),
		Newsletter:        NewNewsletterService(repo.Subscriber, mail, log),
		Contact:           NewContactService(config, mail, log),
	}
}
