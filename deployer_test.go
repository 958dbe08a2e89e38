package quoterdeploy_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolpath/quoterdeploy"
	"github.com/poolpath/quoterdeploy/bindings"
	"github.com/poolpath/quoterdeploy/internal/testutils/backends"
)

var (
	deployerAddr = common.HexToAddress("0x0101010101010101010101010101010101010101")
	factoryAddr  = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	weth9Addr    = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
)

func testAuth() *bind.TransactOpts {
	return &bind.TransactOpts{
		From:     deployerAddr,
		GasPrice: big.NewInt(1_000_000_000),
		GasLimit: 5_000_000,
		Value:    big.NewInt(0),
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
		Context: context.Background(),
	}
}

func Test_Deployer_Deploy(t *testing.T) {
	t.Parallel()

	backend := &backends.Fake{Nonce: 7}
	d := quoterdeploy.NewDeployer(testAuth(), backend)

	result, err := d.Deploy(factoryAddr, weth9Addr)
	require.NoError(t, err)

	sent := backend.Sent()
	require.Len(t, sent, 1)
	tx := sent[0]

	// A create transaction: no recipient, zero value.
	assert.Nil(t, tx.To())
	assert.Zero(t, tx.Value().Sign())

	// The payload is exactly the template followed by the encoded arguments.
	wantInitCode, err := bindings.InitCode(factoryAddr, weth9Addr)
	require.NoError(t, err)
	assert.Equal(t, wantInitCode, tx.Data())

	// The two addresses sit in the two trailing words, in argument order.
	data := tx.Data()
	require.GreaterOrEqual(t, len(data), 64)
	assert.Equal(t, factoryAddr.Bytes(), data[len(data)-52:len(data)-32])
	assert.Equal(t, weth9Addr.Bytes(), data[len(data)-20:])

	assert.Equal(t, crypto.CreateAddress(deployerAddr, 7), result.Address)
	assert.Equal(t, tx.Hash(), result.Tx.Hash())
	require.NotNil(t, result.Quoter)
	assert.Equal(t, result.Address, result.Quoter.Address())
}

func Test_Deployer_Deploy_SameInputsSamePayload(t *testing.T) {
	t.Parallel()

	backend := &backends.Fake{}
	d := quoterdeploy.NewDeployer(testAuth(), backend)

	_, err := d.Deploy(factoryAddr, weth9Addr)
	require.NoError(t, err)
	_, err = d.Deploy(factoryAddr, weth9Addr)
	require.NoError(t, err)

	sent := backend.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, sent[0].Data(), sent[1].Data())
}

func Test_Deployer_Deploy_ZeroConfigAccepted(t *testing.T) {
	t.Parallel()

	backend := &backends.Fake{}
	d := quoterdeploy.NewDeployer(testAuth(), backend)

	// The deployer performs no validation of the two addresses; a zero
	// factory still produces a well-formed payload.
	result, err := d.Deploy(common.Address{}, weth9Addr)
	require.NoError(t, err)
	require.NotNil(t, result.Tx)

	data := result.Tx.Data()
	assert.Equal(t, make([]byte, 32), data[len(data)-64:len(data)-32])
}

func Test_Deployer_Deploy_SubmissionFailure(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("insufficient funds for gas * price + value")
	backend := &backends.Fake{SendErr: sendErr}
	d := quoterdeploy.NewDeployer(testAuth(), backend)

	result, err := d.Deploy(factoryAddr, weth9Addr)
	require.ErrorIs(t, err, sendErr)

	// No partial object is observable.
	assert.Equal(t, quoterdeploy.DeployResult{}, result)
	assert.Empty(t, backend.Sent())
}

func Test_Deployer_Confirm(t *testing.T) {
	t.Parallel()

	tx := types.NewTx(&types.LegacyTx{Nonce: 7, Gas: 5_000_000, GasPrice: big.NewInt(1), Value: big.NewInt(0)})
	receiptErr := errors.New("connection refused")

	tests := []struct {
		name         string
		receipt      *types.Receipt
		receiptErr   error
		wantErr      error
		wantReverted bool
	}{
		{
			name:    "mined successfully",
			receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()},
		},
		{
			name:         "mined but reverted",
			receipt:      &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash()},
			wantReverted: true,
		},
		{
			name:    "never mined",
			wantErr: context.DeadlineExceeded,
		},
		{
			// Only a missing receipt keeps the poll alive; any other
			// backend error surfaces immediately.
			name:       "backend failure",
			receiptErr: receiptErr,
			wantErr:    receiptErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := &backends.Fake{
				Receipts:   map[common.Hash]*types.Receipt{},
				ReceiptErr: tt.receiptErr,
			}
			if tt.receipt != nil {
				backend.Receipts[tx.Hash()] = tt.receipt
			}
			d := quoterdeploy.NewDeployer(testAuth(), backend)

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			receipt, err := d.Confirm(ctx, tx)
			switch {
			case tt.wantReverted:
				var revertErr *quoterdeploy.TxRevertedError
				require.ErrorAs(t, err, &revertErr)
				assert.Equal(t, tx.Hash(), revertErr.Hash)
				assert.Equal(t, tt.receipt, receipt)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, receipt)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.receipt, receipt)
			}
		})
	}
}
