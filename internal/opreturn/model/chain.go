package model

// Network names the chain a daemon reports (main, test, regtest, signet).
type Network string

// ChainInfo is the subset of getblockchaininfo the indexer relies on.
type ChainInfo struct {
	Chain         Network
	TipHeight     uint64
	PrunedHeight  uint64
	Pruned        bool
	BestBlockHash string
}

// Block is a fully decoded block with ordered transactions.
type Block struct {
	Hash         string
	Height       uint64
	Transactions []Transaction
}

// Transaction is a block transaction with ordered outputs.
type Transaction struct {
	ID      string
	Hash    string
	Outputs []Output
}

// Output carries the decoded locking script of a transaction output.
type Output struct {
	Index      uint32
	ScriptAsm  string
	ScriptHex  string
	ScriptType string
}
