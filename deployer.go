// Package quoterdeploy deploys the precompiled PathQuoter contract.
//
// Deployment is a single one-shot operation: the creation bytecode is
// concatenated with the ABI-encoded constructor arguments (the pool factory
// and the wrapped-ether address) and submitted as a zero-value create
// transaction. The two addresses are passed through unvalidated; whether the
// quoter accepts them is decided by its own constructor.
package quoterdeploy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/poolpath/quoterdeploy/bindings"
)

// ContractDeployBackend is the chain capability the deployer needs: submit
// the create transaction and fetch its receipt.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// DeployResult is returned by a successful Deploy.
type DeployResult struct {
	// Address the quoter will live at once the transaction is mined.
	Address common.Address

	// Tx is the create transaction carrying the init code.
	Tx *types.Transaction

	// Quoter is the typed wrapper bound to Address.
	Quoter *bindings.PathQuoter
}

// Deployer submits PathQuoter deployments through a single signer and
// backend.
type Deployer struct {
	auth    *bind.TransactOpts
	backend ContractDeployBackend
}

// NewDeployer creates a Deployer.
func NewDeployer(auth *bind.TransactOpts, backend ContractDeployBackend) *Deployer {
	return &Deployer{
		auth:    auth,
		backend: backend,
	}
}

// Deploy submits the creation of a new PathQuoter bound to the given pool
// factory and wrapped-ether addresses. Errors from the backend are returned
// as-is rather than signalled through a zero address; a non-nil result means
// the transaction was accepted, not that it was mined. Use Confirm to wait
// for the receipt.
func (d *Deployer) Deploy(factory common.Address, weth9 common.Address) (DeployResult, error) {
	address, tx, quoter, err := bindings.DeployPathQuoter(d.auth, d.backend, factory, weth9)
	if err != nil {
		return DeployResult{}, fmt.Errorf("deploy path quoter: %w", err)
	}

	return DeployResult{
		Address: address,
		Tx:      tx,
		Quoter:  quoter,
	}, nil
}

// Confirm polls for the receipt of the create transaction until it is mined
// or the context expires. A mined but reverted creation yields a
// *TxRevertedError together with the receipt.
func (d *Deployer) Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	queryTicker := time.NewTicker(time.Second)
	defer queryTicker.Stop()

	for {
		receipt, err := d.backend.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, NewTxRevertedError(tx.Hash())
			}

			return receipt, nil
		}

		// Keep polling only while the transaction is not yet mined.
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("receipt retrieval failed: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
