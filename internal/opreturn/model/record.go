package model

// DiscoveredRecord is a marker output found while scanning.
type DiscoveredRecord struct {
	MarkerPayload   string `json:"opreturn"`
	TransactionID   string `json:"txid"`
	TransactionHash string `json:"txhash"`
	BlockHash       string `json:"blockhash"`
}
