package pirate

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ChainParams carries the Komodo asset-chain address encoding constants.
// Pirate Chain shares Komodo's transparent address format (R-addresses).
var ChainParams = chaincfg.Params{
	Name:             "kmd",
	PubKeyHashAddrID: 0x3c,
	ScriptHashAddrID: 0x55,
	PrivateKeyID:     0xbc,
}

// PubKeyToAddress derives the transparent R-address for a hex-encoded
// compressed public key, as used in notary season tables.
func PubKeyToAddress(pubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", fmt.Errorf("decode pubkey hex: %w", err)
	}
	if len(pubKey) != 33 {
		return "", fmt.Errorf("pubkey length %d, want 33 bytes compressed", len(pubKey))
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey), &ChainParams)
	if err != nil {
		return "", fmt.Errorf("build address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
