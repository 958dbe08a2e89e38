package quoterdeploy

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TxRevertedError is returned when the creation transaction was mined but the
// constructor reverted, so no contract exists at the predicted address.
type TxRevertedError struct {
	Hash common.Hash
}

// NewTxRevertedError creates a new TxRevertedError.
func NewTxRevertedError(hash common.Hash) *TxRevertedError {
	return &TxRevertedError{Hash: hash}
}

func (e *TxRevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted: contract creation failed", e.Hash)
}
