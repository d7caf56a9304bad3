package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

type WebhookController struct {
	Subs *services.SubscriptionService
}

func NewWebhookController(subs *services.SubscriptionService) *WebhookController {
	return &WebhookController{Subs: subs}
}

// POST /webhooks/stripe
//
// Unauthenticated by JWT; Stripe signs the payload instead.
func (wc *WebhookController) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed session"})
			return
		}

		userID, err := strconv.ParseUint(sess.ClientReferenceID, 10, 32)
		if err != nil {
			log.Printf("stripe webhook: bad client_reference_id %q", sess.ClientReferenceID)
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad client reference"})
			return
		}

		customerID, subscriptionID := "", ""
		if sess.Customer != nil {
			customerID = sess.Customer.ID
		}
		var periodEnd *time.Time
		if sess.Subscription != nil {
			subscriptionID = sess.Subscription.ID
			if sess.Subscription.CurrentPeriodEnd > 0 {
				t := time.Unix(sess.Subscription.CurrentPeriodEnd, 0)
				periodEnd = &t
			}
		}

		if err := wc.Subs.Activate(uint(userID), customerID, subscriptionID, periodEnd); err != nil {
			log.Printf("stripe webhook: activate user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "activation failed"})
			return
		}

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed subscription"})
			return
		}
		if err := wc.Subs.DeactivateByStripeSubscription(sub.ID); err != nil {
			log.Printf("stripe webhook: deactivate %s: %v", sub.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
