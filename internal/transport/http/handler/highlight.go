package handler

import (
	"github.com/gin-gonic/gin"

	"versenotes/internal/app"
	"versenotes/internal/metrics"
	"versenotes/internal/transport/http/response"
)

type HighlightHandler struct {
	highlightService *app.HighlightService
}

type CreateHighlightRequest struct {
	UserID   FlexibleID `json:"userId" binding:"required"`
	VerseRef string     `json:"verseRef" binding:"required"`
	Word     string     `json:"word" binding:"required"`
	Note     string     `json:"note" binding:"required"`
}

func NewHighlightHandler(highlightService *app.HighlightService) *HighlightHandler {
	return &HighlightHandler{highlightService: highlightService}
}

func (h *HighlightHandler) Create(c *gin.Context) {
	var req CreateHighlightRequest
	if !bindJSON(c, &req, app.MsgHighlightFieldsNeeded) {
		return
	}

	highlight, err := h.highlightService.Create(c.Request.Context(), app.CreateHighlightInput{
		UserID:   uint(req.UserID),
		VerseRef: req.VerseRef,
		Word:     req.Word,
		Note:     req.Note,
	})
	if err != nil {
		writeError(c, err, app.MsgSaveHighlightFailed)
		return
	}

	response.OK(c, "Highlight saved", gin.H{"highlightId": highlight.ID})
}

func (h *HighlightHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		metrics.RecordFailure("validation")
		response.Fail(c, app.MsgInvalidUserID)
		return
	}

	highlights, err := h.highlightService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, app.MsgListHighlightsFailed)
		return
	}

	response.OK(c, "", gin.H{"highlights": highlights})
}

// Delete reports success whether or not the id existed; "deleted" says which.
func (h *HighlightHandler) Delete(c *gin.Context) {
	highlightID, ok := pathID(c, "highlightId")
	if !ok {
		metrics.RecordFailure("validation")
		response.Fail(c, app.MsgInvalidHighlightID)
		return
	}

	deleted, err := h.highlightService.Delete(c.Request.Context(), highlightID)
	if err != nil {
		writeError(c, err, app.MsgDeleteHighlightFailed)
		return
	}

	response.OK(c, "Highlight deleted", gin.H{"deleted": deleted})
}
