package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/repository"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/service"
	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/response"
)

// Handler serves the /blogs routes.
type Handler struct {
	svc    service.Service
	msgs   config.Messages
	strict bool
}

// New returns a Handler. With strict set, not-found answers use HTTP 404
// instead of an HTTP 200 envelope carrying the not-found code.
func New(svc service.Service, msgs config.Messages, strict bool) *Handler {
	return &Handler{svc: svc, msgs: msgs, strict: strict}
}

// RegisterBlogRoutes mounts the blog routes under config.BlogsRoot.
func RegisterBlogRoutes(r gin.IRouter, h *Handler) {
	g := r.Group(config.BlogsRoot)
	g.GET(config.BlogsList, h.List)
	g.GET(config.BlogsGet, h.Read)
	g.POST(config.BlogsCreate, h.Create)
	g.DELETE(config.BlogsDelete, h.Remove)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), ParseSort(c.Query("sort")))
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.JSON(c, http.StatusOK, response.Success(http.StatusOK, h.msgs.Success, list))
}

func (h *Handler) Read(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(c, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.fail(c, "read", err)
		return
	}
	response.JSON(c, http.StatusOK, response.Success(http.StatusOK, h.msgs.Success, b))
}

func (h *Handler) Create(c *gin.Context) {
	var in blog.CreateInput
	// an absent body binds as an empty object and fails validation below
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.JSON(c, http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request body", err))
		return
	}
	b, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.JSON(c, http.StatusOK, response.Success(http.StatusOK, h.msgs.Success, b))
}

func (h *Handler) Remove(c *gin.Context) {
	b, err := h.svc.Remove(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(c, http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(c, "remove", err)
		return
	}
	response.JSON(c, http.StatusOK, response.Success(http.StatusOK, h.msgs.Success, b))
}

// notFound answers with code inside an HTTP 200 success envelope, or with a
// plain 404 error envelope in strict mode.
func (h *Handler) notFound(c *gin.Context, code int) {
	if h.strict {
		response.JSON(c, http.StatusNotFound, response.Error(http.StatusNotFound, h.msgs.NotFound, nil))
		return
	}
	response.JSON(c, http.StatusOK, response.Success(code, h.msgs.NotFound, nil))
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	logger.Errorf("blog %s failed: %v", op, err)
	response.InternalError(c, err)
}

// ParseSort turns "-createdAt,title" into sort fields. Unknown fields are dropped.
func ParseSort(raw string) []repository.SortField {
	if raw == "" {
		return nil
	}
	var out []repository.SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if !repository.SortableFields[field] {
			continue
		}
		out = append(out, repository.SortField{Field: field, Desc: desc})
	}
	return out
}
