package crypto

import (
	"fmt"

	"github.com/Reznov00/wallet-keeper/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

type ethWalletProvisioner struct{}

// NewWalletProvisioner returns a [WalletProvisioner] producing Ethereum
// accounts: secp256k1 keys drawn from crypto/rand, EIP-55 addresses, and
// 0x-prefixed hex private keys.
func NewWalletProvisioner() WalletProvisioner {
	return &ethWalletProvisioner{}
}

func (p *ethWalletProvisioner) Create() (models.Wallet, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	return models.Wallet{
		Address:    ethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(ethcrypto.FromECDSA(key)),
	}, nil
}
