package handler

import (
	"errors"
	"net/http"

	"cityvoice/backend/internal/complaint"

	"github.com/gin-gonic/gin"
)

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateComplaint handles the public multipart submission form.
func (h *Handler) CreateComplaint(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	created, err := h.Complaints.Create(
		c.PostForm("title"),
		c.PostForm("description"),
		form.File["images"],
	)
	switch {
	case errors.Is(err, complaint.ErrNoImages):
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
	case errors.Is(err, complaint.ErrTooManyImages),
		errors.Is(err, complaint.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create complaint"})
	default:
		c.JSON(http.StatusCreated, created)
	}
}

// ListComplaints returns every persisted complaint; filtering happens in the
// client.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Complaints.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaintStatus sets the triage status of one complaint.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	updated, err := h.Complaints.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case errors.Is(err, complaint.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, complaint.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint status"})
	default:
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteComplaint removes one complaint. A repeated delete reports 404.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	err := h.Complaints.Delete(c.Param("id"))
	switch {
	case errors.Is(err, complaint.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete complaint"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
	}
}
