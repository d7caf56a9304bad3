package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/subscription"
	"gorm.io/gorm"
)

// SubscriptionService manages the Stripe checkout/cancel lifecycle and
// its reflection onto the user's UsageRecord. Cancellation never resets
// usage history, it only flips the subscribed flag.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &SubscriptionService{db: db}
}

// CreateCheckoutSession starts a Stripe Checkout flow for the
// subscription price and returns the hosted payment URL.
func (s *SubscriptionService) CreateCheckoutSession(user *models.User) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(os.Getenv("STRIPE_PRICE_ID")),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(os.Getenv("CHECKOUT_SUCCESS_URL")),
		CancelURL:         stripe.String(os.Getenv("CHECKOUT_CANCEL_URL")),
		CustomerEmail:     stripe.String(user.Email),
		ClientReferenceID: stripe.String(fmt.Sprintf("%d", user.ID)),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// Activate marks the user subscribed. Called from the checkout webhook
// with the Stripe ids so a later cancellation can be matched back.
func (s *SubscriptionService) Activate(userID uint, customerID, subscriptionID string, periodEnd *time.Time) error {
	var rec models.UsageRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.UsageRecord{UserID: userID}
	} else if err != nil {
		return fmt.Errorf("load usage record: %w", err)
	}

	rec.Subscribed = true
	rec.SubscriptionEnd = periodEnd
	rec.StripeCustomerID = customerID
	rec.StripeSubscriptionID = subscriptionID
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("save usage record: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil {
		if err := utils.SendSubscriptionEmail(user.Email); err != nil {
			log.Printf("subscription email failed for user %d: %v", userID, err)
		}
	}
	EmitAlert(userID, models.AlertSubscription, "Subscription active. Unlimited analyses unlocked.")
	return nil
}

// DeactivateByStripeSubscription handles the subscription-deleted
// webhook. Usage counters and first-use time survive the flip.
func (s *SubscriptionService) DeactivateByStripeSubscription(subscriptionID string) error {
	var rec models.UsageRecord
	if err := s.db.Where("stripe_subscription_id = ?", subscriptionID).First(&rec).Error; err != nil {
		return fmt.Errorf("no usage record for subscription %s: %w", subscriptionID, err)
	}
	return s.deactivate(&rec)
}

// Cancel handles an explicit in-app cancel: the remote subscription is
// cancelled first, then the local record flipped. A failed remote call
// leaves the user subscribed so state can't drift.
func (s *SubscriptionService) Cancel(userID uint) error {
	var rec models.UsageRecord
	if err := s.db.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return fmt.Errorf("load usage record: %w", err)
	}
	if !rec.Subscribed {
		return errors.New("no active subscription")
	}

	if rec.StripeSubscriptionID != "" {
		if _, err := subscription.Cancel(rec.StripeSubscriptionID, nil); err != nil {
			return fmt.Errorf("cancel stripe subscription: %w", err)
		}
	}
	return s.deactivate(&rec)
}

func (s *SubscriptionService) deactivate(rec *models.UsageRecord) error {
	rec.Subscribed = false
	rec.SubscriptionEnd = nil
	rec.StripeSubscriptionID = ""
	if err := s.db.Save(rec).Error; err != nil {
		return fmt.Errorf("save usage record: %w", err)
	}
	EmitAlert(rec.UserID, models.AlertSubscription, "Subscription ended. Free limits apply again.")
	return nil
}
