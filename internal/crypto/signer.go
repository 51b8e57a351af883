package crypto

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

type ethTransactionSigner struct {
	chainID  *big.Int
	gasLimit uint64
	gasPrice *big.Int
	signer   types.Signer
}

// NewTransactionSigner returns a [TransactionSigner] that builds legacy
// value transfers for the configured chain and signs them with the EIP-155
// replay-protected scheme.
func NewTransactionSigner(cfg config.Chain) (TransactionSigner, error) {
	gasPrice, ok := new(big.Int).SetString(cfg.GasPriceWei, 10)
	if !ok || gasPrice.Sign() < 0 {
		return nil, fmt.Errorf("invalid gas price %q", cfg.GasPriceWei)
	}
	if cfg.ID <= 0 {
		return nil, fmt.Errorf("invalid chain id %d", cfg.ID)
	}

	chainID := big.NewInt(cfg.ID)
	return &ethTransactionSigner{
		chainID:  chainID,
		gasLimit: cfg.GasLimit,
		gasPrice: gasPrice,
		signer:   types.LatestSignerForChainID(chainID),
	}, nil
}

func (s *ethTransactionSigner) Sign(ctx context.Context, d models.TransactionDescriptor) (models.SignedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return models.SignedTransaction{}, err
	}

	key, err := parsePrivateKey(d.Key)
	if err != nil {
		return models.SignedTransaction{}, err
	}

	value, err := parseValue(d.Value.String())
	if err != nil {
		return models.SignedTransaction{}, err
	}

	if !common.IsHexAddress(d.To) {
		return models.SignedTransaction{}, fmt.Errorf("%w: recipient %q", ErrMalformedAddress, d.To)
	}
	to := common.HexToAddress(d.To)

	from := ethcrypto.PubkeyToAddress(key.PublicKey)
	if d.From != "" {
		if !common.IsHexAddress(d.From) {
			return models.SignedTransaction{}, fmt.Errorf("%w: sender %q", ErrMalformedAddress, d.From)
		}
		if common.HexToAddress(d.From) != from {
			return models.SignedTransaction{}, ErrSenderKeyMismatch
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    d.Nonce,
		GasPrice: new(big.Int).Set(s.gasPrice),
		Gas:      s.gasLimit,
		To:       &to,
		Value:    value,
	})

	signed, err := types.SignTx(tx, s.signer, key)
	if err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	return models.SignedTransaction{
		From:            from.Hex(),
		To:              to.Hex(),
		Value:           value.String(),
		Nonce:           signed.Nonce(),
		Gas:             signed.Gas(),
		GasPrice:        signed.GasPrice().String(),
		ChainID:         s.chainID.String(),
		RawTransaction:  hexutil.Encode(raw),
		TransactionHash: signed.Hash().Hex(),
	}, nil
}

func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")

	key, err := ethcrypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return key, nil
}

// parseValue accepts a non-negative base-10 integer amount of wei.
func parseValue(s string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative amount", ErrMalformedValue)
	}
	return value, nil
}
