// Package bitcoin talks to a Bitcoin Core compatible daemon over JSON-RPC.
package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/goodnatureofminers/opreturn-indexer/pkg/safe"
	"go.uber.org/ratelimit"
)

// Client exposes the chain queries the indexer needs.
//
// Calls are neither retried nor cached here. rpcclient in HTTP POST mode
// still retries failed HTTP round trips internally before reporting them.
type Client struct {
	rpc        RPC
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewClient wraps rpc with metrics and an optional rate limiter.
func NewClient(rpc RPC, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *Client {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &Client{
		rpc:        rpc,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// NewLimiter returns a limiter for rps requests per second, unlimited when rps is zero.
func NewLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

// ConnConfig builds the rpcclient configuration for a plain HTTP daemon endpoint.
func ConnConfig(host, user, password string) *rpcclient.ConnConfig {
	return &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
}

func (c *Client) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()
	return ctx.Err()
}

// ChainInfo returns tip and pruning information from getblockchaininfo.
func (c *Client) ChainInfo(ctx context.Context) (info model.ChainInfo, err error) {
	if err = c.acquire(ctx); err != nil {
		return model.ChainInfo{}, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_blockchain_info", err, started)
	}()

	res, err := c.rpc.GetBlockChainInfo()
	if err != nil {
		return model.ChainInfo{}, classify("getblockchaininfo", err)
	}
	if res == nil {
		return model.ChainInfo{}, classify("getblockchaininfo", ErrEmptyResult)
	}
	info, err = BuildChainInfo(res)
	if err != nil {
		return model.ChainInfo{}, &ProtocolError{Method: "getblockchaininfo", Err: err}
	}
	return info, nil
}

// BlockHash returns the hash of the block at height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (hash string, err error) {
	h, err := safe.Int64(height)
	if err != nil {
		return "", fmt.Errorf("block height %d: %w", height, err)
	}
	if err = c.acquire(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_hash", err, started)
	}()

	res, err := c.rpc.GetBlockHash(h)
	if err != nil {
		return "", classify("getblockhash", err)
	}
	if res == nil {
		return "", classify("getblockhash", ErrEmptyResult)
	}
	return res.String(), nil
}

// Block fetches the block with every transaction decoded.
func (c *Client) Block(ctx context.Context, hash string) (block *model.Block, err error) {
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	if err = c.acquire(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()

	var res *btcjson.GetBlockVerboseTxResult
	res, err = c.rpc.GetBlockVerboseTx(blockHash)
	if err != nil {
		return nil, classify("getblock", err)
	}
	if res == nil {
		return nil, classify("getblock", ErrEmptyResult)
	}
	block, err = BuildBlockFromVerbose(res)
	if err != nil {
		return nil, &ProtocolError{Method: "getblock", Err: err}
	}
	return block, nil
}

// RawTransaction fetches a transaction by id.
func (c *Client) RawTransaction(ctx context.Context, txid string) (tx *btcutil.Tx, err error) {
	txHash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}
	if err = c.acquire(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()

	tx, err = c.rpc.GetRawTransaction(txHash)
	if err != nil {
		return nil, classify("getrawtransaction", err)
	}
	if tx == nil {
		return nil, classify("getrawtransaction", ErrEmptyResult)
	}
	return tx, nil
}
