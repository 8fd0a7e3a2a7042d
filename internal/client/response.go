package client

import (
	"encoding/json"

	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/pkg/helpers"
)

// bytesHex is the wire form of a byte payload: 0x-prefixed lowercase hex.
func bytesHex(b []byte) string {
	return helpers.BytesToHex(b)
}

// Receipt holds the fields of a mined transaction receipt.
type Receipt struct {
	BlockHash         string
	TransactionHash   string
	BlockNumber       types.BigNumber
	CumulativeGasUsed types.BigNumber
	GasUsed           types.BigNumber
	From              types.Address
	To                types.Address
}

var receiptRequiredKeys = []string{
	"blockHash", "blockNumber", "cumulativeGasUsed", "gasUsed", "from", "to", "transactionHash",
}

// parseReceipt decodes a receipt object. Every required key must be
// present; a missing key fails with CodeMissingField naming the key.
func parseReceipt(raw json.RawMessage) (*Receipt, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "receipt is not an object"}
	}
	for _, key := range receiptRequiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, &RPCError{Code: CodeMissingField, Message: key}
		}
	}

	var body struct {
		BlockHash         string `json:"blockHash"`
		BlockNumber       string `json:"blockNumber"`
		CumulativeGasUsed string `json:"cumulativeGasUsed"`
		GasUsed           string `json:"gasUsed"`
		From              string `json:"from"`
		To                string `json:"to"`
		TransactionHash   string `json:"transactionHash"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "unable to decode receipt: " + err.Error()}
	}

	blockNumber, err := types.ParseHex(body.BlockNumber)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "blockNumber is not a hex quantity"}
	}
	cumulative, err := types.ParseHex(body.CumulativeGasUsed)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "cumulativeGasUsed is not a hex quantity"}
	}
	gasUsed, err := types.ParseHex(body.GasUsed)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "gasUsed is not a hex quantity"}
	}
	from, err := types.ParseAddress(body.From)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "from is not an address"}
	}
	to, err := types.ParseAddress(body.To)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "to is not an address"}
	}

	return &Receipt{
		BlockHash:         body.BlockHash,
		TransactionHash:   body.TransactionHash,
		BlockNumber:       blockNumber,
		CumulativeGasUsed: cumulative,
		GasUsed:           gasUsed,
		From:              from,
		To:                to,
	}, nil
}

// BlockInformation holds the header fields the library exposes.
type BlockInformation struct {
	Timestamp uint32
}

func parseBlockInformation(raw json.RawMessage) (*BlockInformation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "block is not an object"}
	}
	if _, ok := fields["timestamp"]; !ok {
		return nil, &RPCError{Code: CodeMissingField, Message: "timestamp"}
	}

	var body struct {
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "unable to decode block: " + err.Error()}
	}
	ts, err := types.ParseHex(body.Timestamp)
	if err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "timestamp is not a hex quantity"}
	}
	seconds, err := ts.Uint32()
	if err != nil {
		return nil, err
	}
	return &BlockInformation{Timestamp: seconds}, nil
}
