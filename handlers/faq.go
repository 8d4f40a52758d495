package handlers

import (
	"net/http"

	"arame/utils"

	"github.com/gin-gonic/gin"
)

type faqRequest struct {
	Question string `json:"question" binding:"required"`
}

// FAQHandler answers a hotel question directly, outside the chat flow.
func (h *HandlerBundle) FAQHandler(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid question payload", err.Error())
		return
	}

	answer, matched := h.FAQs.Answer(req.Question)
	c.JSON(http.StatusOK, gin.H{
		"answer":  answer,
		"matched": matched,
	})
}
