package settlement_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpay/config"
	"rentpay/infras/otel/mocks"
	"rentpay/infras/settlement"
)

const chainID = 1337

var hostAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")

type fakeChain struct {
	sent      []*types.Transaction
	sendErr   error
	receipt   *types.Receipt
	tx        *types.Transaction
	head      uint64
	balance   *big.Int
	lastQuery common.Hash
}

func (f *fakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)

	return f.sendErr
}

func (f *fakeChain) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.lastQuery = hash
	if f.receipt == nil {
		return nil, ethereum.NotFound
	}

	return f.receipt, nil
}

func (f *fakeChain) TransactionByHash(_ context.Context, _ common.Hash) (*types.Transaction, bool, error) {
	return f.tx, false, nil
}

func (f *fakeChain) BlockNumber(_ context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeChain) BalanceAt(_ context.Context, _ common.Address, _ *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func newClient(chain *fakeChain, finality uint64) settlement.Client {
	cfg := &config.Config{}
	cfg.Settlement.ChainID = chainID
	cfg.Settlement.WeiPerMinorUnit = "1000"
	cfg.Settlement.FinalityDepth = finality

	return settlement.NewWithChain(chain, cfg, mocks.NewOtel())
}

func signedTransfer(t *testing.T, minor int64) (*types.Transaction, []byte, common.Address) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	to := hostAddress
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    1,
		To:       &to,
		Value:    big.NewInt(minor * 1000),
		Gas:      21000,
		GasPrice: big.NewInt(1),
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(chainID)), key)
	require.NoError(t, err)

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)

	return signed, raw, crypto.PubkeyToAddress(key.PublicKey)
}

func TestClient_Decode(t *testing.T) {
	client := newClient(&fakeChain{}, 1)
	signed, raw, from := signedTransfer(t, 352)

	transfer, err := client.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, signed.Hash().Hex(), transfer.Reference)
	assert.Equal(t, from.Hex(), transfer.From)
	assert.Equal(t, hostAddress.Hex(), transfer.To)
	assert.Equal(t, int64(352), transfer.Amount)

	_, err = client.Decode([]byte("junk"))
	assert.ErrorIs(t, err, settlement.ErrMalformedTransfer)
}

func TestClient_Submit(t *testing.T) {
	signed, raw, _ := signedTransfer(t, 352)

	t.Run("accepted", func(t *testing.T) {
		chain := &fakeChain{}

		ref, err := newClient(chain, 1).Submit(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, signed.Hash().Hex(), ref)
		assert.Len(t, chain.sent, 1)
	})

	t.Run("already known", func(t *testing.T) {
		chain := &fakeChain{sendErr: errors.New("already known")}

		ref, err := newClient(chain, 1).Submit(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, signed.Hash().Hex(), ref)
	})

	t.Run("rejected", func(t *testing.T) {
		chain := &fakeChain{sendErr: errors.New("nonce too low")}

		_, err := newClient(chain, 1).Submit(context.Background(), raw)
		assert.Error(t, err)
	})
}

func TestClient_Status(t *testing.T) {
	signed, _, from := signedTransfer(t, 352)
	ref := signed.Hash().Hex()

	tests := []struct {
		name     string
		chain    *fakeChain
		finality uint64
		want     settlement.Receipt
	}{
		{
			name:     "not yet included",
			chain:    &fakeChain{},
			finality: 1,
			want:     settlement.Receipt{Status: settlement.StatusPending},
		},
		{
			name: "included but not final",
			chain: &fakeChain{
				receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)},
				tx:      signed,
				head:    10,
			},
			finality: 3,
			want:     settlement.Receipt{Status: settlement.StatusPending, Sequence: 10},
		},
		{
			name: "confirmed",
			chain: &fakeChain{
				receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)},
				tx:      signed,
				head:    12,
			},
			finality: 3,
			want: settlement.Receipt{
				Status:   settlement.StatusConfirmed,
				Amount:   352,
				Sequence: 10,
				From:     from.Hex(),
				To:       hostAddress.Hex(),
			},
		},
		{
			name: "reverted",
			chain: &fakeChain{
				receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(10)},
				head:    10,
			},
			finality: 1,
			want:     settlement.Receipt{Status: settlement.StatusFailed, Sequence: 10, Reason: "transaction reverted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newClient(tt.chain, tt.finality).Status(context.Background(), ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, signed.Hash(), tt.chain.lastQuery)
		})
	}
}

func TestClient_Balance(t *testing.T) {
	client := newClient(&fakeChain{balance: big.NewInt(500_999)}, 1)

	balance, err := client.Balance(context.Background(), hostAddress.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	_, err = client.Balance(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, settlement.ErrMalformedTransfer)
}
