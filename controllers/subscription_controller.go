package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Subs  *services.SubscriptionService
	Usage *services.UsageService
}

func NewSubscriptionController(subs *services.SubscriptionService, usage *services.UsageService) *SubscriptionController {
	return &SubscriptionController{Subs: subs, Usage: usage}
}

// POST /subscription/checkout
func (sc *SubscriptionController) Checkout(c *gin.Context) {
	user, err := services.FindUserByEmail(c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	url, err := sc.Subs.CreateCheckoutSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}

// POST /subscription/cancel
func (sc *SubscriptionController) Cancel(c *gin.Context) {
	if err := sc.Subs.Cancel(currentUser(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription cancelled"})
}

// GET /subscription/status
func (sc *SubscriptionController) Status(c *gin.Context) {
	status, err := sc.Usage.Status(currentUser(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
