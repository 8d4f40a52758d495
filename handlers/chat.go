package handlers

import (
	"net/http"

	"arame/middleware"
	"arame/models"
	"arame/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler runs one conversational turn for a guest.
func (h *HandlerBundle) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat payload", err.Error())
		return
	}

	sessionID := middleware.SessionID(c)
	reply, err := h.Dialogue.Process(c.Request.Context(), req.GuestID, sessionID, req.Message)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Success:  true,
		Response: reply,
	})
}
