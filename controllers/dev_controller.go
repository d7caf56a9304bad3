package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// DevController holds endpoints used during development only; routes
// are mounted behind the same auth middleware as everything else.
type DevController struct {
	Push *services.PushService
}

func NewDevController(p *services.PushService) *DevController {
	return &DevController{Push: p}
}

type pushReq struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// POST /dev/push
func (d *DevController) PushTest(c *gin.Context) {
	var req pushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		req.Title = "Test alert"
	}
	if req.Body == "" {
		req.Body = "This is only a test."
	}

	d.Push.PushToUser(currentUser(c), req.Title, req.Body, req.Data)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type devUploadReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /dev/upload
func DevUploadImage(c *gin.Context) {
	var req devUploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadMealPhoto(req.ImageBase64, currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
