package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contactnest/internal/apperrors"
	"contactnest/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type ContactRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}

// Create handles POST /contacts/.
func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	contact, err := h.contactService.CreateContact(req.Name, req.Email, req.Phone)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// List handles GET /contacts/?limit=&offset=.
func (h *ContactHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	contacts, err := h.contactService.ListContacts(limit, offset)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// Get handles GET /contacts/:id.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseContactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Update handles PUT /contacts/:id.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseContactID(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	contact, err := h.contactService.UpdateContact(id, req.Name, req.Email, req.Phone)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /contacts/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseContactID(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Search handles GET /contacts/search?query=.
func (h *ContactHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter required"})
		return
	}

	contacts, err := h.contactService.SearchContacts(query)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func parseContactID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return 0, false
	}
	return uint(id), true
}
