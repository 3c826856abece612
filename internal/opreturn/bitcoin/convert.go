package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/goodnatureofminers/opreturn-indexer/pkg/safe"
)

// BuildChainInfo maps getblockchaininfo into model.ChainInfo.
func BuildChainInfo(src *btcjson.GetBlockChainInfoResult) (model.ChainInfo, error) {
	tip, err := safe.Uint64(src.Blocks)
	if err != nil {
		return model.ChainInfo{}, fmt.Errorf("tip height: %w", err)
	}
	pruned, err := safe.Uint64(src.PruneHeight)
	if err != nil {
		return model.ChainInfo{}, fmt.Errorf("prune height: %w", err)
	}
	return model.ChainInfo{
		Chain:         model.Network(src.Chain),
		TipHeight:     tip,
		PrunedHeight:  pruned,
		Pruned:        src.Pruned,
		BestBlockHash: src.BestBlockHash,
	}, nil
}

// BuildBlockFromVerbose maps a verbosity 2 getblock result into model.Block.
func BuildBlockFromVerbose(src *btcjson.GetBlockVerboseTxResult) (*model.Block, error) {
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", src.Hash, err)
	}

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		outputs := make([]model.Output, 0, len(tx.Vout))
		for _, vout := range tx.Vout {
			outputs = append(outputs, model.Output{
				Index:      vout.N,
				ScriptAsm:  vout.ScriptPubKey.Asm,
				ScriptHex:  vout.ScriptPubKey.Hex,
				ScriptType: vout.ScriptPubKey.Type,
			})
		}
		txs = append(txs, model.Transaction{
			ID:      tx.Txid,
			Hash:    tx.Hash,
			Outputs: outputs,
		})
	}

	return &model.Block{
		Hash:         src.Hash,
		Height:       height,
		Transactions: txs,
	}, nil
}
