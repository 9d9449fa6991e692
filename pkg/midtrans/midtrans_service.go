package midtrans

import (
	"context"
	"errors"
	"fmt"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/internal/utils"
	"freshtrack/pkg/user"

	"github.com/google/uuid"
	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreatePremiumTransaction(ctx context.Context, userID string, email string) (domain.CreateTransactionResponse, error)
		ProcessNotification(ctx context.Context, orderID string) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userService        user.UserService
		snapClient         snap.Client
		coreClient         coreapi.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userService user.UserService) MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := midtransgo.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtransgo.Production
	}

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &midtransService{
		midtransRepository: midtransRepository,
		userService:        userService,
		snapClient:         snapClient,
		coreClient:         coreClient,
	}
}

func (s *midtransService) CreatePremiumTransaction(ctx context.Context, userID string, email string) (domain.CreateTransactionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateTransactionResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.PremiumSubscriptionPrice,
		},
		CustomerDetail: &midtransgo.CustomerDetails{
			Email: email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateTransactionResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Amount:  domain.PremiumSubscriptionPrice,
		Status:  "Pending",
	}

	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateTransactionResponse{}, err
	}

	return domain.CreateTransactionResponse{
		OrderID:    orderID,
		SnapToken:  snapResp.Token,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// ProcessNotification re-checks the transaction status with Midtrans instead
// of trusting the webhook payload.
func (s *midtransService) ProcessNotification(ctx context.Context, orderID string) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	statusResp, statusErr := s.coreClient.CheckTransaction(orderID)
	if statusErr != nil {
		return domain.ErrPaymentFailed
	}

	switch statusResp.TransactionStatus {
	case "capture", "settlement":
		transaction.Status = "Settlement"
	case "expire":
		transaction.Status = "Expired"
	case "cancel", "deny":
		transaction.Status = "Canceled"
	default:
		transaction.Status = "Pending"
	}

	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status == "Settlement" {
		return s.userService.SetPremium(ctx, transaction.UserID.String(), true)
	}

	return nil
}
