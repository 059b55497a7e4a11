package domain

import "encoding/json"

// Reply is an asynchronous confirmation delivered by the host for a
// previously dispatched instruction. ID is the correlation id; Error is
// set instead of Data when the sub-call failed.
type Reply struct {
	ID    uint64          `json:"id"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// TokenInstantiateResult is the payload of a token-creation reply.
type TokenInstantiateResult struct {
	ContractAddress string `json:"contract_address"`
}

// TradeData reports the filled quantity, price and fee of a derivative
// market order, as 18-decimal fixed-point strings.
type TradeData struct {
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Fee      string `json:"fee"`
}

// DerivativeOrderResult is the payload of an order confirmation on the
// derivative venue.
type DerivativeOrderResult struct {
	OrderHash string     `json:"order_hash"`
	Results   *TradeData `json:"results"`
}

// SpotOrderResult is the payload of an order confirmation on the spot
// venue. Only the resulting order hashes are reported.
type SpotOrderResult struct {
	OrderHashes []string `json:"order_hashes"`
}
