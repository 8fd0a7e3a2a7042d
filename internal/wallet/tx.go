package wallet

import (
	"fmt"

	"github.com/quartznode/evmkit/internal/rlp"
	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/pkg/helpers"
)

// SigningStandard selects the transaction envelope.
type SigningStandard uint8

const (
	// StandardLegacy is a pre-EIP-2718 transaction with EIP-155 replay protection.
	StandardLegacy SigningStandard = iota
	// StandardEIP1559 is a type-2 transaction (0x02 envelope, dynamic fees).
	StandardEIP1559
)

// eip1559TxType is the EIP-2718 type byte prefixing type-2 payloads.
const eip1559TxType = 0x02

// TransactionProperties carries the unsigned content of a transaction.
// Immutable once handed to the signer.
type TransactionProperties struct {
	Nonce    uint32
	GasPrice types.BigNumber
	GasLimit uint32
	To       types.Address
	Value    types.BigNumber
	Data     []byte
	ChainID  uint32
	Standard SigningStandard

	// EIP-1559 fees; consulted only when Standard is StandardEIP1559.
	MaxPriorityFeePerGas types.BigNumber
	MaxFeePerGas         types.BigNumber
}

// Signature holds the ECDSA scalars with leading zeros stripped and the
// recovery value. For a signed legacy transaction V folds in the chain id
// per EIP-155.
type Signature struct {
	V uint32
	R []byte
	S []byte
}

// Transaction is a set of properties plus, once signed, a signature.
type Transaction struct {
	props TransactionProperties
	sig   *Signature
}

// NewTransaction builds an unsigned transaction.
func NewTransaction(props TransactionProperties) *Transaction {
	return &Transaction{props: props}
}

// Properties returns the transaction content.
func (t *Transaction) Properties() TransactionProperties {
	return t.props
}

// Signed reports whether the transaction carries a signature.
func (t *Transaction) Signed() bool {
	return t.sig != nil
}

// Signature returns the signature, or nil for an unsigned transaction.
func (t *Transaction) Signature() *Signature {
	return t.sig
}

// Serialize encodes the transaction. For an unsigned transaction this is
// the signing pre-image: legacy uses the EIP-155 nine-tuple with
// (chainID, 0, 0) in the trailing slots; EIP-1559 prefixes the type byte.
func (t *Transaction) Serialize() ([]byte, error) {
	if t.props.Standard == StandardEIP1559 {
		return t.serializeEIP1559()
	}
	return t.serializeLegacy()
}

// SerializeHex returns the serialized transaction as a 0x-prefixed hex
// string, the form submitted via eth_sendRawTransaction.
func (t *Transaction) SerializeHex() (string, error) {
	raw, err := t.Serialize()
	if err != nil {
		return "", err
	}
	return helpers.BytesToHex(raw), nil
}

// Hash returns the Keccak-256 of the serialized transaction. Meaningful as
// a transaction hash only once signed.
func (t *Transaction) Hash() ([]byte, error) {
	raw, err := t.Serialize()
	if err != nil {
		return nil, err
	}
	return helpers.Keccak256(raw), nil
}

func (t *Transaction) serializeLegacy() ([]byte, error) {
	// [nonce, gasPrice, gasLimit, to, value, data, v, r, s]
	// Unsigned: v = chainID, r and s empty (EIP-155 pre-image).
	v := uint64(t.props.ChainID)
	var r, s []byte
	if t.sig != nil {
		v = uint64(t.sig.V)
		r = t.sig.R
		s = t.sig.S
	}
	return rlp.EncodeList([]interface{}{
		uint64(t.props.Nonce),
		t.props.GasPrice.Bytes(),
		uint64(t.props.GasLimit),
		t.props.To.Bytes(),
		t.props.Value.Bytes(),
		t.props.Data,
		v,
		r,
		s,
	})
}

func (t *Transaction) serializeEIP1559() ([]byte, error) {
	// 0x02 || RLP([chainId, nonce, maxPriorityFeePerGas, maxFeePerGas,
	//              gasLimit, to, value, data, accessList, (v, r, s)])
	items := []interface{}{
		uint64(t.props.ChainID),
		uint64(t.props.Nonce),
		t.props.MaxPriorityFeePerGas.Bytes(),
		t.props.MaxFeePerGas.Bytes(),
		uint64(t.props.GasLimit),
		t.props.To.Bytes(),
		t.props.Value.Bytes(),
		t.props.Data,
		[]interface{}{}, // accessList (empty)
	}
	if t.sig != nil {
		items = append(items, uint64(t.sig.V), t.sig.R, t.sig.S)
	}
	encoded, err := rlp.EncodeList(items)
	if err != nil {
		return nil, err
	}
	return append([]byte{eip1559TxType}, encoded...), nil
}

// SignTx signs the properties with the account's key and returns the signed
// transaction. Legacy signing folds the chain id into v per EIP-155
// (v = recoveryID + 2*chainID + 35); EIP-1559 keeps the bare recovery id.
func SignTx(acct *Account, props TransactionProperties) (*Transaction, error) {
	unsigned := NewTransaction(props)
	preimage, err := unsigned.Serialize()
	if err != nil {
		return nil, fmt.Errorf("encoding pre-image: %w", err)
	}

	digest := helpers.Keccak256(preimage)
	r, s, recoveryID, err := signDigest(acct.PrivateKey(), digest)
	if err != nil {
		return nil, err
	}

	v := uint32(recoveryID)
	if props.Standard == StandardLegacy {
		v = uint32(recoveryID) + props.ChainID*2 + 35
	}

	return &Transaction{
		props: props,
		sig:   &Signature{V: v, R: r, S: s},
	}, nil
}
