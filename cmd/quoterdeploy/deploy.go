package quoterdeploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cobra"

	"github.com/poolpath/quoterdeploy"
	"github.com/poolpath/quoterdeploy/deploymentlog"
)

type deployConfig struct {
	ChainSelector uint64 `validate:"required"`
	Factory       string `validate:"required,eth_addr"`
	WETH9         string `validate:"required,eth_addr"`
	LogDir        string `validate:"required"`
}

type deployReport struct {
	PathQuoter    string `json:"pathQuoter"`
	DeploymentTxn string `json:"deploymentTxn"`
	BlockNumber   uint64 `json:"blockNumber"`
}

func buildDeployCmd() *cobra.Command {
	var cfg deployConfig

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the PathQuoter bound to a pool factory and WETH9",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only the syntax of the two addresses is checked here; their
			// values are passed through to the contract unjudged.
			if err := validator.New().Struct(cfg); err != nil {
				return err
			}

			chain, exists := chainsel.ChainBySelector(cfg.ChainSelector)
			if !exists {
				return errors.New("chain not found")
			}

			pk, err := loadPrivateKey()
			if err != nil {
				fmt.Printf("Error loading private key: %s\n", err)
				return err
			}

			auth, err := bind.NewKeyedTransactorWithChainID(pk, new(big.Int).SetUint64(chain.EvmChainID))
			if err != nil {
				return err
			}
			auth.GasLimit = loadGasLimit()

			client, err := loadRPC(cfg.ChainSelector)
			if err != nil {
				return err
			}
			defer client.Close()

			d := quoterdeploy.NewDeployer(auth, client)

			result, err := d.Deploy(common.HexToAddress(cfg.Factory), common.HexToAddress(cfg.WETH9))
			if err != nil {
				return err
			}
			fmt.Printf("Transaction %s submitted\n", result.Tx.Hash().Hex())

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			receipt, err := d.Confirm(ctx, result.Tx)
			if err != nil {
				return err
			}
			fmt.Printf("Transaction %s confirmed\n", receipt.TxHash.Hex())

			timestamp := uint64(time.Now().Unix())
			if header, err := client.HeaderByNumber(ctx, receipt.BlockNumber); err == nil {
				timestamp = header.Time
			}

			chainID := strconv.FormatUint(chain.EvmChainID, 10)
			record := deploymentlog.Contract{
				Address:       result.Address,
				DeploymentTxn: receipt.TxHash,
				Constructor: map[string]string{
					"_factory": cfg.Factory,
					"_WETH9":   cfg.WETH9,
				},
			}
			if err := appendLog(cfg.LogDir, chainID, record, timestamp); err != nil {
				return err
			}

			blob, err := json.MarshalIndent(deployReport{
				PathQuoter:    result.Address.Hex(),
				DeploymentTxn: receipt.TxHash.Hex(),
				BlockNumber:   receipt.BlockNumber.Uint64(),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(blob))

			return nil
		},
	}

	cmd.Flags().Uint64Var(&cfg.ChainSelector, "selector", 0, "Chain selector for the target chain")
	cmd.Flags().StringVar(&cfg.Factory, "factory", "", "Pool factory address the quoter reads pools from")
	cmd.Flags().StringVar(&cfg.WETH9, "weth9", "", "Wrapped ether address")
	cmd.Flags().StringVar(&cfg.LogDir, "log-dir", ".", "Directory holding the deployments/ log tree")

	return cmd
}

// appendLog records a PathQuoter instance in the per-chain deployment log.
func appendLog(logDir, chainID string, record deploymentlog.Contract, timestamp uint64) error {
	f, err := deploymentlog.LoadOrNew(logDir, chainID)
	if err != nil {
		return err
	}

	err = f.Append(deploymentlog.Entry{
		Contracts: map[string]deploymentlog.Contract{
			"PathQuoter": record,
		},
		Timestamp: timestamp,
	})
	if err != nil {
		return err
	}

	return f.Save(deploymentlog.PathFor(logDir, chainID))
}
