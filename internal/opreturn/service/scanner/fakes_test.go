package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

// fakeChain serves blocks from memory and fails hash lookups on demand.
type fakeChain struct {
	mu         sync.Mutex
	info       model.ChainInfo
	blocks     map[uint64]*model.Block
	hashErrors map[uint64]int
	fetched    []uint64
}

func newFakeChain(tip, pruned uint64, blocks ...*model.Block) *fakeChain {
	c := &fakeChain{
		info:       model.ChainInfo{Chain: "regtest", TipHeight: tip, PrunedHeight: pruned},
		blocks:     make(map[uint64]*model.Block),
		hashErrors: make(map[uint64]int),
	}
	for _, b := range blocks {
		c.blocks[b.Height] = b
	}
	return c
}

func (c *fakeChain) ChainInfo(context.Context) (model.ChainInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info, nil
}

func (c *fakeChain) BlockHash(_ context.Context, height uint64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hashErrors[height] > 0 {
		c.hashErrors[height]--
		return "", fmt.Errorf("connection reset fetching %d", height)
	}
	b, ok := c.blocks[height]
	if !ok {
		return "", fmt.Errorf("block height %d out of range", height)
	}
	return b.Hash, nil
}

func (c *fakeChain) Block(_ context.Context, hash string) (*model.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.blocks {
		if b.Hash == hash {
			c.fetched = append(c.fetched, b.Height)
			return b, nil
		}
	}
	return nil, fmt.Errorf("block %s not found", hash)
}

// fakeStore keeps the position and records in memory and can fail a chosen save.
type fakeStore struct {
	mu        sync.Mutex
	position  *model.ScanPosition
	saves     []model.ScanPosition
	records   []model.DiscoveredRecord
	failSaveN int
}

func (s *fakeStore) SaveScanPosition(_ context.Context, blockNumber uint64, outputIndex int64, transactionIndex uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaveN > 0 && len(s.saves)+1 == s.failSaveN {
		s.failSaveN = 0
		return fmt.Errorf("connection refused")
	}
	p := model.ScanPosition{BlockNumber: blockNumber, TransactionIndex: transactionIndex, OutputIndex: outputIndex}
	s.position = &p
	s.saves = append(s.saves, p)
	return nil
}

func (s *fakeStore) LoadScanPosition(context.Context) (model.ScanPosition, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position == nil {
		return model.ScanPosition{}, false, nil
	}
	return *s.position, true, nil
}

func (s *fakeStore) AppendRecord(_ context.Context, markerPayload, txID, txHash, blockHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, model.DiscoveredRecord{
		MarkerPayload:   markerPayload,
		TransactionID:   txID,
		TransactionHash: txHash,
		BlockHash:       blockHash,
	})
	return nil
}

func (s *fakeStore) payloads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.MarkerPayload)
	}
	return out
}

type nopMetrics struct{}

func (nopMetrics) ObserveBlock(uint64, time.Time)       {}
func (nopMetrics) ObserveFetchRetry(uint64)             {}
func (nopMetrics) ObserveOutput(bool)                   {}
func (nopMetrics) ObserveCheckpoint(model.ScanPosition) {}

func block(height uint64, txs ...model.Transaction) *model.Block {
	return &model.Block{Hash: fmt.Sprintf("hash-%d", height), Height: height, Transactions: txs}
}

func tx(id string, asms ...string) model.Transaction {
	outputs := make([]model.Output, 0, len(asms))
	for i, asm := range asms {
		outputs = append(outputs, model.Output{Index: uint32(i), ScriptAsm: asm})
	}
	return model.Transaction{ID: id, Hash: id + "-w", Outputs: outputs}
}
