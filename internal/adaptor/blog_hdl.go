package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlogHandler struct {
	blogs  usecase.BlogService
	config *utils.Config
	log    *zap.Logger
}

func NewBlogHandler(blogs usecase.BlogService, config *utils.Config, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		blogs:  blogs,
		config: config,
		log:    log.With(zap.String("handler", "blog")),
	}
}

// Create reads a multipart form: text fields plus an optional "pdf" file.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	pdf, ok := formFile(w, r, "pdf", h.config.Media.MaxUploadSize)
	if !ok {
		return
	}

	req := request.BlogRequest{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
		Author:   formString(r, "author"),
		IsActive: formBool(r, "is_active"),
	}
	if featured := formBool(r, "is_featured"); featured != nil {
		req.IsFeatured = *featured
	}

	item, err := h.blogs.CreateBlog(r.Context(), &req, pdf)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Blog created", item)
}

func blogListQuery(r *http.Request) *request.BlogListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.BlogListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		Category:         queryString(r, "category"),
		IsActive:         queryBool(r, "is_active"),
		IsFeatured:       queryBool(r, "is_featured"),
		CreatedFrom:      queryTime(r, "created_from"),
		CreatedTo:        queryTime(r, "created_to"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.blogs.GetBlogs(r.Context(), blogListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *BlogHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.blogs.GetPublicBlogs(r.Context(), blogListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.blogs.GetBlogByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pdf, ok := formFile(w, r, "pdf", h.config.Media.MaxUploadSize)
	if !ok {
		return
	}

	req := request.BlogUpdateRequest{
		Title:      formString(r, "title"),
		Content:    formString(r, "content"),
		Category:   formString(r, "category"),
		Author:     formString(r, "author"),
		IsActive:   formBool(r, "is_active"),
		IsFeatured: formBool(r, "is_featured"),
	}

	item, err := h.blogs.UpdateBlog(r.Context(), id, &req, pdf)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Blog updated", item)
}

func (h *BlogHandler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.blogs.ToggleFlag(r.Context(), id, chi.URLParam(r, "flag"))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Blog flag toggled", map[string]any{chi.URLParam(r, "flag"): *value})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.blogs.DeleteBlog(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Blog deleted", result)
}
