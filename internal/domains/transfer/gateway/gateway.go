// Package gateway is the contract for the payer's signing authority. Its calls may
// block on the payer, so callers never hold a booking lock across them.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import "context"

type Identity struct {
	Address string
}

type TransferRequest struct {
	BookingID string
	From      string
	To        string
	Amount    int64
}

// SignedTransfer is ready for settlement intake.
type SignedTransfer struct {
	Reference string
	From      string
	To        string
	Amount    int64
	Raw       []byte
}

// Gateway is never retried automatically. Sign fails with failure.ErrUserRejectedSignature
// or failure.ErrGatewayUnavailable.
type Gateway interface {
	Connect(ctx context.Context) (Identity, error)
	VerifySufficientBalance(ctx context.Context, address string, amount int64) (bool, error)
	Sign(ctx context.Context, req TransferRequest) (SignedTransfer, error)
}
