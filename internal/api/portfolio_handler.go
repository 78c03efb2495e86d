package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/content"
	"portfolio/internal/database"
)

var errInvalidID = errors.New("invalid id")

// PortfolioHandler serves the portfolio content endpoints. Reads are public;
// the router places the write methods behind the auth middleware.
type PortfolioHandler struct {
	repo   *content.Repository
	logger *slog.Logger
}

// NewPortfolioHandler constructs the content handler.
func NewPortfolioHandler(repo *content.Repository, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		repo:   repo,
		logger: logger,
	}
}

type aboutRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
}

type workRequest struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Period       string `json:"period"`
	Description  string `json:"description" binding:"required"`
	Skills       string `json:"skills"`
	ImageURL     string `json:"image_url"`
	DisplayOrder *int   `json:"display_order"`
}

type publicationRequest struct {
	Title        string `json:"title" binding:"required"`
	Publisher    string `json:"publisher"`
	Year         int    `json:"year" binding:"omitempty,gte=0"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ImageURL     string `json:"image_url"`
	DisplayOrder *int   `json:"display_order"`
}

type contactRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// GetAbout returns the about section, or an empty object when nothing has
// been written yet. Missing optional content is never an error.
func (h *PortfolioHandler) GetAbout(c *gin.Context) {
	about, found, err := h.repo.GetAbout(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("fetch about failed", slog.Any("error", err))
		Internal(c, "failed to fetch about section")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, about)
}

// UpdateAbout upserts the singleton about record.
func (h *PortfolioHandler) UpdateAbout(c *gin.Context) {
	var req aboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	fields := database.About{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.repo.UpsertAbout(c.Request.Context(), fields); err != nil {
		middleware.LoggerFromContext(c).Error("update about failed", slog.Any("error", err))
		Internal(c, "failed to update about section")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "About section updated successfully"})
}

// ListWork returns the full work history in display order.
func (h *PortfolioHandler) ListWork(c *gin.Context) {
	items, err := h.repo.ListWork(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("fetch work failed", slog.Any("error", err))
		Internal(c, "failed to fetch work experience")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateWork inserts a new work entry and returns its id.
func (h *PortfolioHandler) CreateWork(c *gin.Context) {
	var req workRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	id, err := h.repo.CreateWork(c.Request.Context(), workFromRequest(req))
	if err != nil {
		middleware.LoggerFromContext(c).Error("create work failed", slog.Any("error", err))
		Internal(c, "failed to add work experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "message": "Work experience added successfully"})
}

// UpdateWork overwrites a work entry. An id that matches nothing still
// succeeds with zero rows touched.
func (h *PortfolioHandler) UpdateWork(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var req workRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if _, err := h.repo.UpdateWork(c.Request.Context(), id, workFromRequest(req)); err != nil {
		middleware.LoggerFromContext(c).Error("update work failed", slog.Any("error", err))
		Internal(c, "failed to update work experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Work experience updated successfully"})
}

// DeleteWork removes a work entry.
func (h *PortfolioHandler) DeleteWork(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	if _, err := h.repo.DeleteWork(c.Request.Context(), id); err != nil {
		middleware.LoggerFromContext(c).Error("delete work failed", slog.Any("error", err))
		Internal(c, "failed to delete work experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Work experience deleted successfully"})
}

// ListPublications returns all publications in display order.
func (h *PortfolioHandler) ListPublications(c *gin.Context) {
	items, err := h.repo.ListPublications(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("fetch publications failed", slog.Any("error", err))
		Internal(c, "failed to fetch publications")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreatePublication inserts a new publication and returns its id.
func (h *PortfolioHandler) CreatePublication(c *gin.Context) {
	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	id, err := h.repo.CreatePublication(c.Request.Context(), publicationFromRequest(req))
	if err != nil {
		middleware.LoggerFromContext(c).Error("create publication failed", slog.Any("error", err))
		Internal(c, "failed to add publication")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "message": "Publication added successfully"})
}

// UpdatePublication overwrites a publication.
func (h *PortfolioHandler) UpdatePublication(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if _, err := h.repo.UpdatePublication(c.Request.Context(), id, publicationFromRequest(req)); err != nil {
		middleware.LoggerFromContext(c).Error("update publication failed", slog.Any("error", err))
		Internal(c, "failed to update publication")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Publication updated successfully"})
}

// DeletePublication removes a publication.
func (h *PortfolioHandler) DeletePublication(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	if _, err := h.repo.DeletePublication(c.Request.Context(), id); err != nil {
		middleware.LoggerFromContext(c).Error("delete publication failed", slog.Any("error", err))
		Internal(c, "failed to delete publication")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Publication deleted successfully"})
}

// GetContact returns the contact record, or an empty object when unset.
func (h *PortfolioHandler) GetContact(c *gin.Context) {
	contact, found, err := h.repo.GetContact(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("fetch contact failed", slog.Any("error", err))
		Internal(c, "failed to fetch contact info")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContact upserts the singleton contact record.
func (h *PortfolioHandler) UpdateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	fields := database.Contact{
		Email:     req.Email,
		GitHub:    req.GitHub,
		LinkedIn:  req.LinkedIn,
		Instagram: req.Instagram,
	}
	if err := h.repo.UpsertContact(c.Request.Context(), fields); err != nil {
		middleware.LoggerFromContext(c).Error("update contact failed", slog.Any("error", err))
		Internal(c, "failed to update contact info")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact info updated successfully"})
}

// GetAll bundles every section into the single response shape consumed by
// the public site: {about, work, publications, contact}.
func (h *PortfolioHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	about, aboutFound, err := h.repo.GetAbout(ctx)
	if err != nil {
		logger.Error("fetch about failed", slog.Any("error", err))
		Internal(c, "failed to fetch portfolio data")
		return
	}
	work, err := h.repo.ListWork(ctx)
	if err != nil {
		logger.Error("fetch work failed", slog.Any("error", err))
		Internal(c, "failed to fetch portfolio data")
		return
	}
	publications, err := h.repo.ListPublications(ctx)
	if err != nil {
		logger.Error("fetch publications failed", slog.Any("error", err))
		Internal(c, "failed to fetch portfolio data")
		return
	}
	contact, contactFound, err := h.repo.GetContact(ctx)
	if err != nil {
		logger.Error("fetch contact failed", slog.Any("error", err))
		Internal(c, "failed to fetch portfolio data")
		return
	}

	payload := gin.H{
		"work":         work,
		"publications": publications,
	}
	if aboutFound {
		payload["about"] = about
	} else {
		payload["about"] = gin.H{}
	}
	if contactFound {
		payload["contact"] = contact
	} else {
		payload["contact"] = gin.H{}
	}

	c.JSON(http.StatusOK, payload)
}

func workFromRequest(req workRequest) database.WorkExperience {
	item := database.WorkExperience{
		Title:       req.Title,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
		Skills:      req.Skills,
		ImageURL:    req.ImageURL,
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	return item
}

func publicationFromRequest(req publicationRequest) database.Publication {
	item := database.Publication{
		Title:       req.Title,
		Publisher:   req.Publisher,
		Year:        req.Year,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	return item
}

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}
