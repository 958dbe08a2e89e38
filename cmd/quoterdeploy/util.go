package quoterdeploy

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		return nil, err
	}

	pk := os.Getenv("PRIVATE_KEY")
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in .env file")
	}

	return crypto.HexToECDSA(pk)
}

func loadRPC(chainSelector uint64) (*ethclient.Client, error) {
	if err := godotenv.Load(".env"); err != nil {
		return nil, err
	}

	rpcKey := fmt.Sprintf("RPC_URL_%d", chainSelector)
	rpcURL := os.Getenv(rpcKey)
	if rpcURL == "" {
		return nil, errors.New(rpcKey + " not found in .env file")
	}

	return ethclient.Dial(rpcURL)
}

// loadGasLimit reads the optional DEPLOY_GAS_LIMIT override; zero lets the
// backend estimate.
func loadGasLimit() uint64 {
	return cast.ToUint64(os.Getenv("DEPLOY_GAS_LIMIT"))
}
