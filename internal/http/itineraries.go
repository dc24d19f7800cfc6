package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/utils"
)

// ItineraryStore defines database operations for study itineraries.
type ItineraryStore interface {
	StudentGetter
	GetItinerariesForStudent(ctx context.Context, studentID string) ([]entities.Itinerary, error)
	GetItineraryByID(ctx context.Context, id string) (*entities.Itinerary, error)
	AddItinerary(ctx context.Context, itinerary *entities.Itinerary) error
	UpdateItinerary(ctx context.Context, itinerary *entities.Itinerary) (int64, error)
	DeleteItinerary(ctx context.Context, id string) (int64, error)
}

type ItinerariesController struct {
	store ItineraryStore
	now   func() time.Time
}

func NewItinerariesController(store ItineraryStore, now func() time.Time) *ItinerariesController {
	return &ItinerariesController{store: store, now: now}
}

// itineraryRequest is the editable part of an itinerary.
type itineraryRequest struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Instructions      string  `json:"instructions"`
	AttachmentName    *string `json:"attachmentName"`
	AttachmentContent *string `json:"attachmentContent"`
}

// ListForStudent returns a student's itineraries, newest first.
// GET /api/students/:id/itineraries
func (ic *ItinerariesController) ListForStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := ic.store.GetItinerariesForStudent(c.Request.Context(), studentID)
	if err != nil {
		respondInternalError(c, err, "list itineraries")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItinerary adds an itinerary for an existing student.
// POST /api/students/:id/itineraries
func (ic *ItinerariesController) CreateItinerary(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid itinerary payload")
		return
	}

	ctx := c.Request.Context()
	if _, err := ic.store.GetStudentByID(ctx, studentID); err != nil {
		respondStoreError(c, err, "student", "create itinerary")
		return
	}

	itinerary := entities.Itinerary{
		ID:                req.ID,
		StudentID:         studentID,
		Title:             req.Title,
		Instructions:      req.Instructions,
		AttachmentName:    utils.SanitizeAttachmentName(req.AttachmentName),
		AttachmentContent: req.AttachmentContent,
		CreatedDate:       entities.Timestamp(ic.now()),
	}
	if itinerary.ID == "" {
		itinerary.ID = entities.NewItineraryID()
	}

	if err := ic.store.AddItinerary(ctx, &itinerary); err != nil {
		respondStoreError(c, err, "itinerary", "create itinerary")
		return
	}
	respondCreated(c, itinerary)
}

// GetItinerary returns one itinerary.
// GET /api/itineraries/:id
func (ic *ItinerariesController) GetItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	itinerary, err := ic.store.GetItineraryByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "itinerary", "get itinerary")
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// UpdateItinerary replaces title, instructions and attachment.
// PUT /api/itineraries/:id
func (ic *ItinerariesController) UpdateItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid itinerary payload")
		return
	}

	ctx := c.Request.Context()
	rows, err := ic.store.UpdateItinerary(ctx, &entities.Itinerary{
		ID:                id,
		Title:             req.Title,
		Instructions:      req.Instructions,
		AttachmentName:    utils.SanitizeAttachmentName(req.AttachmentName),
		AttachmentContent: req.AttachmentContent,
	})
	if err != nil {
		respondStoreError(c, err, "itinerary", "update itinerary")
		return
	}
	if rows == 0 {
		respondNotFound(c, "itinerary")
		return
	}

	updated, err := ic.store.GetItineraryByID(ctx, id)
	if err != nil {
		respondStoreError(c, err, "itinerary", "reload itinerary")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItinerary removes one itinerary.
// DELETE /api/itineraries/:id
func (ic *ItinerariesController) DeleteItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, err := ic.store.DeleteItinerary(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete itinerary")
		return
	}
	if rows == 0 {
		respondNotFound(c, "itinerary")
		return
	}
	respondSuccess(c, "itinerary deleted")
}
