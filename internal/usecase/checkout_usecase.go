package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// CheckoutUsecase は注文確定のロジック。
// 決済はスコープ外：注文内容をログに残してカートを空にするだけ。
type CheckoutUsecase struct {
	cartUC *CartUsecase
	log    logrus.FieldLogger
}

func NewCheckoutUsecase(cartUC *CartUsecase, log logrus.FieldLogger) *CheckoutUsecase {
	return &CheckoutUsecase{cartUC: cartUC, log: log}
}

type CheckoutInput struct {
	CustomerName  string
	Phone         string
	Address       string
	PaymentMethod string // cash | wave
}

type CheckoutOutput struct {
	Message       string `json:"message"`
	CustomerName  string `json:"customer_name"`
	PaymentMethod string `json:"payment_method"`
	Total         int64  `json:"total"`
	ItemCount     int    `json:"item_count"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID string, in CheckoutInput) (CheckoutOutput, error) {
	if userID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "user id required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "customer name required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}
	switch in.PaymentMethod {
	case "cash", "wave":
	default:
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	cart, err := u.cartUC.GetCart(ctx, userID)
	if err != nil {
		return CheckoutOutput{}, err
	}
	if len(cart.Items) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	// 確定した注文をログへ（ここが唯一の「処理」）
	u.log.WithFields(logrus.Fields{
		"user_id":        userID,
		"customer_name":  in.CustomerName,
		"payment_method": in.PaymentMethod,
		"items":          len(cart.Items),
		"total":          cart.Total,
	}).Info("order confirmed")

	if _, err := u.cartUC.Clear(ctx, userID); err != nil {
		return CheckoutOutput{}, err
	}

	return CheckoutOutput{
		Message:       "order confirmed",
		CustomerName:  strings.TrimSpace(in.CustomerName),
		PaymentMethod: in.PaymentMethod,
		Total:         cart.Total,
		ItemCount:     len(cart.Items),
	}, nil
}
