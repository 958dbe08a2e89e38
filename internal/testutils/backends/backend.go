// Package backends provides a fake chain backend for deployer tests.
package backends

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Fake implements the deployer's ContractDeployBackend against canned data.
// Transactions handed to SendTransaction are recorded for inspection.
type Fake struct {
	mu sync.Mutex

	// Nonce is returned by PendingNonceAt.
	Nonce uint64

	// SendErr, when set, is returned by SendTransaction.
	SendErr error

	// ReceiptErr, when set, is returned by TransactionReceipt.
	ReceiptErr error

	// Receipts maps transaction hashes to the receipts TransactionReceipt
	// serves. Missing hashes yield ethereum.NotFound.
	Receipts map[common.Hash]*types.Receipt

	sent []*types.Transaction
}

// Sent returns the transactions submitted so far.
func (f *Fake) Sent() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*types.Transaction(nil), f.sent...)
}

func (f *Fake) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return f.SendErr
	}
	f.sent = append(f.sent, tx)

	return nil
}

func (f *Fake) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReceiptErr != nil {
		return nil, f.ReceiptErr
	}

	receipt, ok := f.Receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

func (f *Fake) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	return f.Nonce, nil
}

func (f *Fake) PendingCodeAt(_ context.Context, _ common.Address) ([]byte, error) {
	return nil, nil
}

func (f *Fake) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	return nil, nil
}

func (f *Fake) CallContract(_ context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return nil, nil
}

func (f *Fake) HeaderByNumber(_ context.Context, _ *big.Int) (*types.Header, error) {
	return &types.Header{}, nil
}

func (f *Fake) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *Fake) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *Fake) EstimateGas(_ context.Context, _ ethereum.CallMsg) (uint64, error) {
	return 3_000_000, nil
}

func (f *Fake) FilterLogs(_ context.Context, _ ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *Fake) SubscribeFilterLogs(_ context.Context, _ ethereum.FilterQuery, _ chan<- types.Log) (ethereum.Subscription, error) {
	return nil, ethereum.NotFound
}
