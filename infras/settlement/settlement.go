// Package settlement talks to the EVM settlement ledger: it accepts signed
// transfers, reports their status with a finality depth, and reads balances.
package settlement

//go:generate go run go.uber.org/mock/mockgen -source=./settlement.go -destination=./mocks/settlement_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/shared/constant"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
)

const reasonReverted = "transaction reverted"

var ErrMalformedTransfer = errors.New("malformed signed transfer")

// Transfer is a decoded signed transfer.
type Transfer struct {
	Reference string
	From      string
	To        string
	Amount    int64
}

// Receipt is what the ledger reports about a submitted transfer. From and To are
// only filled once the transfer is confirmed.
type Receipt struct {
	Status   Status
	Amount   int64
	Sequence uint64
	Reason   string
	From     string
	To       string
}

type Client interface {
	Decode(raw []byte) (Transfer, error)
	Submit(ctx context.Context, raw []byte) (reference string, err error)
	Status(ctx context.Context, reference string) (Receipt, error)
	Balance(ctx context.Context, address string) (int64, error)
}

// chainReader is the subset of ethclient.Client used here.
type chainReader interface {
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type clientImpl struct {
	chain         chainReader
	signer        types.Signer
	weiPerMinor   *big.Int
	finalityDepth uint64
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	chain, err := ethclient.DialContext(context.Background(), cfg.Settlement.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Str("rpc", cfg.Settlement.RPCURL).Msg("Failed to dial settlement node")
	}

	log.Info().Int64("chain_id", cfg.Settlement.ChainID).Msg("Connected to settlement node")

	return NewWithChain(chain, cfg, otel)
}

// NewWithChain builds a client over an existing chain connection.
func NewWithChain(chain chainReader, cfg *config.Config, otel otel.Otel) Client {
	weiPerMinor, ok := new(big.Int).SetString(cfg.Settlement.WeiPerMinorUnit, 10)
	if !ok || weiPerMinor.Sign() <= 0 {
		log.Warn().Str("value", cfg.Settlement.WeiPerMinorUnit).Msg("Invalid wei per minor unit, using 1")

		weiPerMinor = big.NewInt(1)
	}

	finality := cfg.Settlement.FinalityDepth
	if finality == 0 {
		finality = 1
	}

	return &clientImpl{
		chain:         chain,
		signer:        types.LatestSignerForChainID(big.NewInt(cfg.Settlement.ChainID)),
		weiPerMinor:   weiPerMinor,
		finalityDepth: finality,
		otel:          otel,
	}
}

func (c *clientImpl) Decode(raw []byte) (Transfer, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return Transfer{}, fmt.Errorf("%w: %w", ErrMalformedTransfer, err)
	}

	from, err := types.Sender(c.signer, tx)
	if err != nil {
		return Transfer{}, fmt.Errorf("%w: recover sender: %w", ErrMalformedTransfer, err)
	}

	if tx.To() == nil {
		return Transfer{}, fmt.Errorf("%w: missing recipient", ErrMalformedTransfer)
	}

	return Transfer{
		Reference: tx.Hash().Hex(),
		From:      from.Hex(),
		To:        tx.To().Hex(),
		Amount:    c.toMinor(tx.Value()),
	}, nil
}

func (c *clientImpl) Submit(ctx context.Context, raw []byte) (reference string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".settlement.Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tx := new(types.Transaction)
	if err = tx.UnmarshalBinary(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedTransfer, err)
	}

	reference = tx.Hash().Hex()
	scope.SetAttribute("transfer_reference", reference)

	if err = c.chain.SendTransaction(ctx, tx); err != nil {
		// a resubmission of a transfer the node already holds is accepted
		if strings.Contains(strings.ToLower(err.Error()), "already known") {
			log.Warn().Str("transfer_reference", reference).Msg("settlement node already knows transfer")

			return reference, nil
		}

		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to send transaction")

		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return reference, nil
}

func (c *clientImpl) Status(ctx context.Context, reference string) (res Receipt, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".settlement.Status")
	defer scope.End()
	defer scope.TraceIfError(&err)

	hash := common.HexToHash(reference)

	receipt, err := c.chain.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return Receipt{Status: StatusPending}, nil
	}

	if err != nil {
		return res, fmt.Errorf("failed to get transaction receipt: %w", err)
	}

	head, err := c.chain.BlockNumber(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get block number: %w", err)
	}

	included := receipt.BlockNumber.Uint64()
	if head < included || head-included+1 < c.finalityDepth {
		return Receipt{Status: StatusPending, Sequence: included}, nil
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return Receipt{Status: StatusFailed, Sequence: included, Reason: reasonReverted}, nil
	}

	tx, _, err := c.chain.TransactionByHash(ctx, hash)
	if err != nil {
		return res, fmt.Errorf("failed to get transaction: %w", err)
	}

	res = Receipt{
		Status:   StatusConfirmed,
		Amount:   c.toMinor(tx.Value()),
		Sequence: included,
	}

	if to := tx.To(); to != nil {
		res.To = to.Hex()
	}

	if from, senderErr := types.Sender(c.signer, tx); senderErr == nil {
		res.From = from.Hex()
	} else {
		log.Warn().Err(senderErr).Str("transfer_reference", reference).Msg("failed to recover transfer sender")
	}

	return res, nil
}

func (c *clientImpl) Balance(ctx context.Context, address string) (balance int64, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".settlement.Balance")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("%w: invalid address %q", ErrMalformedTransfer, address)
	}

	wei, err := c.chain.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return c.toMinor(wei), nil
}

// toMinor converts wei into minor units, rounding down. Values beyond int64 saturate.
func (c *clientImpl) toMinor(wei *big.Int) int64 {
	minor := new(big.Int).Quo(wei, c.weiPerMinor)
	if !minor.IsInt64() {
		return int64(^uint64(0) >> 1)
	}

	return minor.Int64()
}
