// Package bindings wraps the compiled PathQuoter contract.
//
// The creation bytecode in PathQuoter.bin is a build artifact produced by the
// contract toolchain and committed as-is. It is treated as an opaque blob:
// deployment appends the ABI-encoded constructor arguments to it and submits
// the result, nothing here ever inspects or rewrites its contents.
package bindings

import (
	_ "embed"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:embed PathQuoter.bin
var pathQuoterBin string

// PathQuoterABI is the external interface of the deployed quoter.
const PathQuoterABI = `[{"inputs":[{"internalType":"address","name":"_factory","type":"address"},{"internalType":"address","name":"_WETH9","type":"address"}],"stateMutability":"nonpayable","type":"constructor"},{"inputs":[],"name":"factory","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[],"name":"WETH9","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"bytes","name":"path","type":"bytes"},{"internalType":"uint256","name":"amountIn","type":"uint256"}],"name":"quoteExactInput","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"tokenIn","type":"address"},{"internalType":"address","name":"tokenOut","type":"address"},{"internalType":"uint24","name":"fee","type":"uint24"},{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"uint160","name":"sqrtPriceLimitX96","type":"uint160"}],"name":"quoteExactInputSingle","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"tokenIn","type":"address"},{"internalType":"address","name":"tokenOut","type":"address"},{"internalType":"uint24","name":"fee","type":"uint24"},{"internalType":"uint256","name":"amountOut","type":"uint256"},{"internalType":"uint160","name":"sqrtPriceLimitX96","type":"uint160"}],"name":"quoteExactOutputSingle","outputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"address","name":"tokenIn","type":"address"},{"internalType":"address","name":"tokenOut","type":"address"}],"name":"quoteV2AmountOut","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"view","type":"function"}]`

// PathQuoterMetaData contains all meta data concerning the PathQuoter contract.
var PathQuoterMetaData = &bind.MetaData{
	ABI: PathQuoterABI,
	Bin: strings.TrimSpace(pathQuoterBin),
}

// Bytecode returns a fresh copy of the creation bytecode.
func Bytecode() []byte {
	return common.FromHex(PathQuoterMetaData.Bin)
}

// PackConstructor ABI-encodes the constructor arguments. Each address
// occupies one left-padded 32 byte word, factory first. The encoding is
// positional and deterministic; values are not validated here, a zero
// address packs to a full zero word.
func PackConstructor(factory common.Address, weth9 common.Address) ([]byte, error) {
	parsed, err := PathQuoterMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	args, err := parsed.Pack("", factory, weth9)
	if err != nil {
		return nil, fmt.Errorf("pack constructor args: %w", err)
	}

	return args, nil
}

// InitCode builds the payload handed to the CREATE primitive: the creation
// bytecode followed immediately by the packed constructor arguments. The
// argument order must match the trailing holes the build step left in the
// bytecode, so the layout is fixed: template first, arguments last.
func InitCode(factory common.Address, weth9 common.Address) ([]byte, error) {
	args, err := PackConstructor(factory, weth9)
	if err != nil {
		return nil, err
	}

	return append(Bytecode(), args...), nil
}

// DeployPathQuoter deploys a new instance of the PathQuoter contract, bound
// to the two configuration addresses. The create transaction carries zero
// value and the init code built by InitCode.
func DeployPathQuoter(
	auth *bind.TransactOpts, backend bind.ContractBackend, factory common.Address, weth9 common.Address,
) (common.Address, *types.Transaction, *PathQuoter, error) {
	parsed, err := PathQuoterMetaData.GetAbi()
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	address, tx, contract, err := bind.DeployContract(auth, *parsed, Bytecode(), backend, factory, weth9)
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	return address, tx, &PathQuoter{
		address:          address,
		PathQuoterCaller: PathQuoterCaller{contract: contract},
	}, nil
}

// NewPathQuoter creates a wrapper for a PathQuoter already deployed at the
// given address.
func NewPathQuoter(address common.Address, backend bind.ContractCaller) (*PathQuoter, error) {
	parsed, err := PathQuoterMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(address, *parsed, backend, nil, nil)

	return &PathQuoter{
		address:          address,
		PathQuoterCaller: PathQuoterCaller{contract: contract},
	}, nil
}

// PathQuoter is a wrapper around a deployed PathQuoter contract. The quoter
// is read-only, so only call bindings exist.
type PathQuoter struct {
	address common.Address

	PathQuoterCaller
}

// Address returns the address the contract is deployed at.
func (q *PathQuoter) Address() common.Address {
	return q.address
}

// PathQuoterCaller carries the read-only bindings of the contract.
type PathQuoterCaller struct {
	contract *bind.BoundContract
}

// Factory returns the pool factory address the quoter was constructed with.
func (q *PathQuoterCaller) Factory(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "factory")
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// WETH9 returns the wrapped-ether address the quoter was constructed with.
func (q *PathQuoterCaller) WETH9(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "WETH9")
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// QuoteExactInput quotes the output amount for a multi-hop swap along the
// encoded path.
func (q *PathQuoterCaller) QuoteExactInput(opts *bind.CallOpts, path []byte, amountIn *big.Int) (*big.Int, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "quoteExactInput", path, amountIn)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// QuoteExactInputSingle quotes the output amount of a single-pool swap.
func (q *PathQuoterCaller) QuoteExactInputSingle(
	opts *bind.CallOpts, tokenIn, tokenOut common.Address, fee *big.Int, amountIn *big.Int, sqrtPriceLimitX96 *big.Int,
) (*big.Int, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "quoteExactInputSingle", tokenIn, tokenOut, fee, amountIn, sqrtPriceLimitX96)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// QuoteExactOutputSingle quotes the input amount required for a single-pool
// swap to produce amountOut.
func (q *PathQuoterCaller) QuoteExactOutputSingle(
	opts *bind.CallOpts, tokenIn, tokenOut common.Address, fee *big.Int, amountOut *big.Int, sqrtPriceLimitX96 *big.Int,
) (*big.Int, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "quoteExactOutputSingle", tokenIn, tokenOut, fee, amountOut, sqrtPriceLimitX96)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// QuoteV2AmountOut quotes the output amount on the constant-product pool of
// the second protocol.
func (q *PathQuoterCaller) QuoteV2AmountOut(
	opts *bind.CallOpts, amountIn *big.Int, tokenIn, tokenOut common.Address,
) (*big.Int, error) {
	var out []interface{}
	err := q.contract.Call(opts, &out, "quoteV2AmountOut", amountIn, tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}
