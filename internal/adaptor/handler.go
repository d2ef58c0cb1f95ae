package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth              *AuthHandler
	User              *UserHandler
	News              *NewsHandler
	Blog              *BlogHandler
	Event             *EventHandler
	FestivalEvent     *FestivalEventHandler
	FestivalHighlight *FestivalHighlightHandler
	Transportation    *TransportationHandler
	Newsletter        *NewsletterHandler
	Contact           *ContactHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:              NewAuthHandler(service.Auth, config, log),
		User:              NewUserHandler(service.User, config, log),
		News:              NewNewsHandler(service.News, config, log),
		Blog:              NewBlogHandler(service.Blog, config, log),
		Event:             NewEventHandler(service.Event, config, log),
		FestivalEvent:     NewFestivalEventHandler(service.FestivalEvent, config, log),
		FestivalHighlight: NewFestivalHighlightHandler(service.FestivalHighlight, config, log),
		Transportation:    NewTransportationHandler(service.Transportation, config, log),
		Newsletter:        NewNewsletterHandler(service.Newsletter, config, log),
		Contact:           NewContactHandler(service.Contact, config, log),
	}
}

// decodeBody parses the JSON request body into dst. On failure it writes a
// 400 and returns false so the caller can bail out.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// writeServiceError maps service sentinel errors onto the response envelope.
// Unknown errors become a 500; the detail is hidden in production.
func writeServiceError(w http.ResponseWriter, err error, config *utils.Config, log *zap.Logger) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrUpload):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrUnauthorized):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrMailDelivery):
		log.Error("Mail delivery failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send email, please try again later")
	default:
		log.Error("Unhandled service error", zap.Error(err))
		if config.Production() {
			utils.ResponseInternalError(w, "Something went wrong")
			return
		}
		utils.ResponseInternalError(w, err.Error())
	}
}

// pathID parses the {id} route parameter. A malformed ID writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(r *http.Request) request.PaginatedRequest {
	q := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(q.Get("page"), 1),
		PerPage: utils.ParseInt(q.Get("per_page"), 10),
	}
}

func queryString(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryBool(r *http.Request, key string) *bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func queryTime(r *http.Request, key string) *time.Time {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}

func querySort(r *http.Request) (string, bool) {
	q := r.URL.Query()
	return q.Get("sort_by"), q.Get("order") == "desc"
}

// formString returns a pointer to a multipart form value, or nil when the
// field was not sent at all. Distinguishes "absent" from "empty" for patch
// requests.
func formString(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func formBool(r *http.Request, key string) *bool {
	v := formString(r, key)
	if v == nil {
		return nil
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		return nil
	}
	return &b
}

// formFile reads an optional multipart file field into memory. A missing
// field is not an error; anything else is reported as a 400.
func formFile(w http.ResponseWriter, r *http.Request, field string, maxSize int64) (*usecase.UploadFile, bool) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return nil, false
	}

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, true
	}
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid file upload", nil)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read uploaded file", nil)
		return nil, false
	}
	if int64(len(data)) > maxSize {
		utils.ResponseBadRequest(w, "Uploaded file is too large", nil)
		return nil, false
	}

	return &usecase.UploadFile{Data: data, Filename: header.Filename}, true
}
