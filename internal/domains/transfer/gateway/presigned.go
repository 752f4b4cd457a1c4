package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"rentpay/infras/settlement"
	"rentpay/shared/failure"
)

var errNoSignature = errors.New("no signed transaction supplied")

type presigned struct {
	settlement settlement.Client
	raw        []byte
}

// NewPresigned adapts a transaction the payer already signed in their wallet.
// The signature is the payer's consent, so Sign only checks that it pays what was asked.
func NewPresigned(settlement settlement.Client, raw []byte) Gateway {
	return &presigned{
		settlement: settlement,
		raw:        raw,
	}
}

func (p *presigned) decode() (settlement.Transfer, error) {
	if len(p.raw) == 0 {
		return settlement.Transfer{}, fmt.Errorf("%w: %w", failure.ErrUserRejectedSignature, errNoSignature)
	}

	transfer, err := p.settlement.Decode(p.raw)
	if err != nil {
		return transfer, fmt.Errorf("%w: %w", failure.ErrUserRejectedSignature, err)
	}

	return transfer, nil
}

func (p *presigned) Connect(_ context.Context) (Identity, error) {
	transfer, err := p.decode()
	if err != nil {
		return Identity{}, err
	}

	return Identity{Address: transfer.From}, nil
}

func (p *presigned) VerifySufficientBalance(ctx context.Context, address string, amount int64) (bool, error) {
	balance, err := p.settlement.Balance(ctx, address)
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("failed to read payer balance")

		return false, fmt.Errorf("%w: %w", failure.ErrGatewayUnavailable, err)
	}

	return balance >= amount, nil
}

func (p *presigned) Sign(_ context.Context, req TransferRequest) (SignedTransfer, error) {
	transfer, err := p.decode()
	if err != nil {
		return SignedTransfer{}, err
	}

	switch {
	case req.From != "" && !strings.EqualFold(transfer.From, req.From):
		return SignedTransfer{}, fmt.Errorf("%w: signed by %s, expected %s", failure.ErrUserRejectedSignature, transfer.From, req.From)
	case req.To != "" && !strings.EqualFold(transfer.To, req.To):
		return SignedTransfer{}, fmt.Errorf("%w: pays %s, expected %s", failure.ErrUserRejectedSignature, transfer.To, req.To)
	case transfer.Amount != req.Amount:
		return SignedTransfer{}, fmt.Errorf("%w: signed %d, expected %d", failure.ErrAmountMismatch, transfer.Amount, req.Amount)
	}

	return SignedTransfer{
		Reference: transfer.Reference,
		From:      transfer.From,
		To:        transfer.To,
		Amount:    transfer.Amount,
		Raw:       p.raw,
	}, nil
}
