package pirate

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"
)

// ScriptDecoder extracts transparent addresses from output scripts.
type ScriptDecoder struct{}

// NewScriptDecoder initializes a decoder for Pirate Chain scripts.
func NewScriptDecoder() *ScriptDecoder {
	return &ScriptDecoder{}
}

// Addresses returns the destination addresses of an output. The node usually
// resolves them; the script hex is decoded only as a fallback.
func (d *ScriptDecoder) Addresses(vout Vout) ([]string, error) {
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return append([]string(nil), vout.ScriptPubKey.Addresses...), nil
	}
	if vout.ScriptPubKey.Hex == "" {
		return nil, nil
	}

	scriptBytes, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return nil, err
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, &ChainParams)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
