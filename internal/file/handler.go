package file

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/identity"
)

type Handler struct {
	service  *Service
	resolver *identity.Resolver
}

func NewHandler(service *Service, resolver *identity.Resolver) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
	}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
	// Clients send parentId as either a string id or the number 0.
	ParentID any `json:"parentId"`
}

// Upload handles POST /files.
func (h *Handler) Upload(c *gin.Context) {
	ident, err := h.resolver.FromRequest(c.Request.Context(), c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), ident, CreateParams{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: coerceParentID(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Show handles GET /files/:id.
func (h *Handler) Show(c *gin.Context) {
	ident, err := h.resolver.FromRequest(c.Request.Context(), c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Index handles GET /files with parentId and page query parameters.
func (h *Handler) Index(c *gin.Context) {
	ident, err := h.resolver.FromRequest(c.Request.Context(), c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = 0
	}

	resp, err := h.service.List(c.Request.Context(), ident, c.Query("parentId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Publish handles PUT /files/:id/publish.
func (h *Handler) Publish(c *gin.Context) {
	h.setVisibility(c, true)
}

// Unpublish handles PUT /files/:id/unpublish.
func (h *Handler) Unpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *Handler) setVisibility(c *gin.Context, public bool) {
	ident, err := h.resolver.FromRequest(c.Request.Context(), c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.service.SetVisibility(c.Request.Context(), ident, c.Param("id"), public)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Data handles GET /files/:id/data, streaming raw content with a MIME type
// derived from the record name.
func (h *Handler) Data(c *gin.Context) {
	ident, err := h.resolver.FromRequest(c.Request.Context(), c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	data, mimeType, err := h.service.Content(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, mimeType, data)
}

func coerceParentID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func respondError(c *gin.Context, err error) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		c.JSON(serviceErr.Status, gin.H{"error": serviceErr.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
