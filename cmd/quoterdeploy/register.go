package quoterdeploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cobra"

	"github.com/poolpath/quoterdeploy/bindings"
	"github.com/poolpath/quoterdeploy/deploymentlog"
)

type registerConfig struct {
	ChainSelector uint64 `validate:"required"`
	Address       string `validate:"required,eth_addr"`
	Txn           string `validate:"omitempty,len=66,hexadecimal"`
	LogDir        string `validate:"required"`
}

type registerReport struct {
	PathQuoter string `json:"pathQuoter"`
	Factory    string `json:"factory"`
	WETH9      string `json:"weth9"`
}

func buildRegisterCmd() *cobra.Command {
	var cfg registerConfig

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Records an already deployed PathQuoter in the deployment log",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Struct(cfg); err != nil {
				return err
			}

			chain, exists := chainsel.ChainBySelector(cfg.ChainSelector)
			if !exists {
				return errors.New("chain not found")
			}

			client, err := loadRPC(cfg.ChainSelector)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			address := common.HexToAddress(cfg.Address)
			code, err := client.CodeAt(ctx, address, nil)
			if err != nil {
				return err
			}
			if len(code) == 0 {
				return fmt.Errorf("no contract code at %s", address.Hex())
			}

			quoter, err := bindings.NewPathQuoter(address, client)
			if err != nil {
				return err
			}

			// The constructor inputs are not recoverable from the chain, so
			// they are read back through the config getters.
			callOpts := &bind.CallOpts{Context: ctx}
			factory, err := quoter.Factory(callOpts)
			if err != nil {
				return err
			}
			weth9, err := quoter.WETH9(callOpts)
			if err != nil {
				return err
			}

			var txHash common.Hash
			timestamp := uint64(time.Now().Unix())
			if cfg.Txn != "" {
				txHash = common.HexToHash(cfg.Txn)
				receipt, err := client.TransactionReceipt(ctx, txHash)
				if err != nil {
					return err
				}
				if header, err := client.HeaderByNumber(ctx, receipt.BlockNumber); err == nil {
					timestamp = header.Time
				}
			}

			chainID := strconv.FormatUint(chain.EvmChainID, 10)
			record := deploymentlog.Contract{
				Address:       address,
				DeploymentTxn: txHash,
				Constructor: map[string]string{
					"_factory": factory.Hex(),
					"_WETH9":   weth9.Hex(),
				},
			}
			if err := appendLog(cfg.LogDir, chainID, record, timestamp); err != nil {
				return err
			}

			blob, err := json.MarshalIndent(registerReport{
				PathQuoter: address.Hex(),
				Factory:    factory.Hex(),
				WETH9:      weth9.Hex(),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(blob))

			return nil
		},
	}

	cmd.Flags().Uint64Var(&cfg.ChainSelector, "selector", 0, "Chain selector for the target chain")
	cmd.Flags().StringVar(&cfg.Address, "address", "", "Address of the deployed PathQuoter")
	cmd.Flags().StringVar(&cfg.Txn, "txn", "", "Optional hash of the transaction that deployed the contract")
	cmd.Flags().StringVar(&cfg.LogDir, "log-dir", ".", "Directory holding the deployments/ log tree")

	return cmd
}
