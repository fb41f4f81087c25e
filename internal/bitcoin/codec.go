package bitcoin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

// CurveSecp256k1 is the only curve public keys may be supplied on.
const CurveSecp256k1 = "secp256k1"

var (
	// ErrUnsupportedCurve is returned when a key is tagged with any curve
	// other than secp256k1.
	ErrUnsupportedCurve = errors.New("unsupported curve type")
	// ErrUnsupportedScript is returned when a script is not a
	// single-signature pay-to-pubkey-hash script.
	ErrUnsupportedScript = errors.New("unsupported script type")
)

// Codec converts between public keys, addresses, output scripts and unlock
// scripts for single-signature pay-to-pubkey-hash spends on one network.
type Codec struct {
	params *chaincfg.Params
}

// NewCodec initializes a codec using params of the provided coin and network.
func NewCodec(coin model.Coin, network model.Network) (*Codec, error) {
	params, err := ChainParams(coin, network)
	if err != nil {
		return nil, err
	}
	return &Codec{params: params}, nil
}

// Params exposes the resolved chain parameters.
func (c *Codec) Params() *chaincfg.Params {
	return c.params
}

// DeriveAddress computes the pay-to-pubkey-hash address for a secp256k1
// public key. The key is normalized to its compressed form before hashing.
func (c *Codec) DeriveAddress(pubKey []byte, curveType string) (string, error) {
	if !strings.EqualFold(curveType, CurveSecp256k1) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurve, curveType)
	}
	parsed, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(parsed.SerializeCompressed()), c.params)
	if err != nil {
		return "", fmt.Errorf("build pubkey hash address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// AddressScript builds the pay-to-pubkey-hash output script for an address.
func (c *Codec) AddressScript(address string) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, c.params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	if _, ok := addr.(*btcutil.AddressPubKeyHash); !ok {
		return nil, fmt.Errorf("%w: address %q is %T", ErrUnsupportedScript, address, addr)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("build output script for %q: %w", address, err)
	}
	return script, nil
}

// AddressFromScript recovers the address paid by a pay-to-pubkey-hash output
// script. Any other script shape is a decode failure.
func (c *Codec) AddressFromScript(script []byte) (string, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, c.params)
	if err != nil {
		return "", fmt.Errorf("extract script addresses: %w", err)
	}
	if class != txscript.PubKeyHashTy || len(addrs) != 1 {
		return "", fmt.Errorf("%w: class %s with %d addresses", ErrUnsupportedScript, class, len(addrs))
	}
	return addrs[0].EncodeAddress(), nil
}

// UnlockScript assembles the <signature> <pubkey> input script that satisfies
// a pay-to-pubkey-hash output. The signature must already carry its hash-type
// suffix.
func (c *Codec) UnlockScript(signature, pubKey []byte) ([]byte, error) {
	script, err := txscript.NewScriptBuilder().AddData(signature).AddData(pubKey).Script()
	if err != nil {
		return nil, fmt.Errorf("build unlock script: %w", err)
	}
	return script, nil
}

// SignerFromUnlockScript recovers the signer's pay-to-pubkey-hash address
// from a <signature> <pubkey> input script.
func (c *Codec) SignerFromUnlockScript(script []byte) (string, error) {
	pushes, err := txscript.PushedData(script)
	if err != nil {
		return "", fmt.Errorf("parse unlock script: %w", err)
	}
	if len(pushes) != 2 {
		return "", fmt.Errorf("%w: unlock script has %d pushes", ErrUnsupportedScript, len(pushes))
	}
	if _, err := btcec.ParsePubKey(pushes[1]); err != nil {
		return "", fmt.Errorf("parse pushed public key: %w", err)
	}
	// The key is hashed exactly as pushed: recompressing would change the
	// hash for signers that published an uncompressed key.
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pushes[1]), c.params)
	if err != nil {
		return "", fmt.Errorf("build signer address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
