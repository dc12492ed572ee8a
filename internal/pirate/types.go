package pirate

// Verbose RPC result types for Komodo-family nodes. btcjson's structs drop
// the Sapling/Sprout fields, so getblock/getrawtransaction responses are
// decoded into these instead.

// ScriptSig is the unlocking script of a transparent input.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vin is a transaction input as reported by getrawtransaction verbose=1.
// Address is populated by address-indexed nodes; otherwise the previous
// output must be looked up via TxID/Vout.
type Vin struct {
	Coinbase  string     `json:"coinbase"`
	TxID      string     `json:"txid"`
	Vout      uint32     `json:"vout"`
	Address   string     `json:"address"`
	ScriptSig *ScriptSig `json:"scriptSig"`
	Sequence  uint32     `json:"sequence"`
}

// IsCoinbase reports whether the input is the block's synthetic mint input.
func (v Vin) IsCoinbase() bool {
	return v.Coinbase != ""
}

// ScriptPubKey is the locking script of a transparent output.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	ReqSigs   int32    `json:"reqSigs"`
	Addresses []string `json:"addresses"`
}

// Vout is a transparent transaction output.
type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// ShieldedSpend is a Sapling spend description; contents are opaque here.
type ShieldedSpend struct {
	Nullifier string `json:"nullifier"`
}

// ShieldedOutput is a Sapling output description; contents are opaque here.
type ShieldedOutput struct {
	Cmu string `json:"cmu"`
}

// JoinSplit is a Sprout joinsplit with its transparent value legs.
type JoinSplit struct {
	VPubOld float64 `json:"vpub_old"`
	VPubNew float64 `json:"vpub_new"`
}

// RawTransaction is a decoded transaction including shielded components.
type RawTransaction struct {
	TxID            string           `json:"txid"`
	Version         int32            `json:"version"`
	LockTime        uint32           `json:"locktime"`
	Vin             []Vin            `json:"vin"`
	Vout            []Vout           `json:"vout"`
	VShieldedSpend  []ShieldedSpend  `json:"vShieldedSpend"`
	VShieldedOutput []ShieldedOutput `json:"vShieldedOutput"`
	VJoinSplit      []JoinSplit      `json:"vjoinsplit"`
	ValueBalance    float64          `json:"valueBalance"`
}

// IsCoinbase reports whether the transaction is the block's minted one.
func (t *RawTransaction) IsCoinbase() bool {
	return len(t.Vin) > 0 && t.Vin[0].IsCoinbase()
}

// HasShieldedParts reports whether any shielded component is present.
func (t *RawTransaction) HasShieldedParts() bool {
	return len(t.VShieldedSpend) > 0 ||
		len(t.VShieldedOutput) > 0 ||
		len(t.VJoinSplit) > 0 ||
		t.ValueBalance != 0
}

// VerboseBlock is a getblock verbosity=2 result with decoded transactions.
type VerboseBlock struct {
	Hash   string           `json:"hash"`
	Height uint64           `json:"height"`
	Time   int64            `json:"time"`
	Tx     []RawTransaction `json:"tx"`
}
