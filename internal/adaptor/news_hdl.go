package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NewsHandler struct {
	news   usecase.NewsService
	config *utils.Config
	log    *zap.Logger
}

func NewNewsHandler(news usecase.NewsService, config *utils.Config, log *zap.Logger) *NewsHandler {
	return &NewsHandler{
		news:   news,
		config: config,
		log:    log.With(zap.String("handler", "news")),
	}
}

// Create reads a multipart form: text fields plus an optional "image" file.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	image, ok := formFile(w, r, "image", h.config.Media.MaxUploadSize)
	if !ok {
		return
	}

	req := request.NewsRequest{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
		IsActive: formBool(r, "is_active"),
	}
	if trending := formBool(r, "is_trending"); trending != nil {
		req.IsTrending = *trending
	}

	item, err := h.news.CreateNews(r.Context(), &req, image)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "News created", item)
}

func newsListQuery(r *http.Request) *request.NewsListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.NewsListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		Category:         queryString(r, "category"),
		IsActive:         queryBool(r, "is_active"),
		IsTrending:       queryBool(r, "is_trending"),
		CreatedFrom:      queryTime(r, "created_from"),
		CreatedTo:        queryTime(r, "created_to"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.news.GetNews(r.Context(), newsListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *NewsHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.news.GetPublicNews(r.Context(), newsListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.news.GetNewsByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	image, ok := formFile(w, r, "image", h.config.Media.MaxUploadSize)
	if !ok {
		return
	}

	req := request.NewsUpdateRequest{
		Title:      formString(r, "title"),
		Content:    formString(r, "content"),
		Category:   formString(r, "category"),
		IsActive:   formBool(r, "is_active"),
		IsTrending: formBool(r, "is_trending"),
	}

	item, err := h.news.UpdateNews(r.Context(), id, &req, image)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "News updated", item)
}

func (h *NewsHandler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.news.ToggleFlag(r.Context(), id, chi.URLParam(r, "flag"))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "News flag toggled", map[string]any{chi.URLParam(r, "flag"): *value})
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.news.DeleteNews(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "News deleted", result)
}
