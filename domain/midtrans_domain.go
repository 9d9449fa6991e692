package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessProcessWebhook    = "webhook processed successfully"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedProcessWebhook    = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPaymentFailed       = errors.New("payment processing failed")
)

// Premium subscription price in IDR.
const PremiumSubscriptionPrice int64 = 15000

type (
	CreateTransactionResponse struct {
		OrderID    string `json:"order_id"`
		SnapToken  string `json:"snap_token"`
		InvoiceURL string `json:"invoice_url"`
	}

	MidtransNotificationRequest struct {
		OrderID string `json:"order_id" validate:"required"`
	}
)
