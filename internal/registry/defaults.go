package registry

const defaultSwapAddrPrefix = "b"

// Known Pirate Chain mining pool payout addresses, used when the registry
// file does not override them.
var defaultPools = map[string]string{
	"coolmine_main":                "RTM2Aw6jiSrePbxZNpfFqz4bDpCcMECMiK",
	"coolmine_solo":                "RSiVR1jAnu95MJMdrZDLhsQacwAJ6aUmd9",
	"solopool.org":                 "RKE8ouuU2xJKmYNXNj9u9AAX4hxXY32fv3",
	"zergpool":                     "RAwQ7QzRymiFDrY1csXpAYEThLBGCpV235",
	"mining-dutch":                 "RXgVgBaQ1HwQmNiYu9EBoX9CFG6sDuxBPS",
	"piratepool.io-marketing":      "RD5PhyAUhapsvj5ps2cCHozsXZfQSvDdrZ",
	"piratepool.io-explorer":       "RAzq6y7dsUKgfuzNjpzyGiuFzvrwuDheQw",
	"piratepool.io-infastructure":  "RKnDd52zJJVtdLNrsLXnh926ojeuToFGiG",
	"piratepool.io-miner-payouts":  "RRL95hu7Pfc4M5uzGL47CQ2rB2rLdpdreg",
	"zpool.ca":                     "RQoBHW1qMsAwTfZc77yYUmBeUxQKMbKKuT",
	"CoolMine.top":                 "RWoMaFmdMXS1Z4RDcTiMwjB53QhsdXVTpR",
	"CoolMine.top [SOLO]":          "RPpzLPu9RXeUqPy18rSKALetGXu7TnRLy4",
}
