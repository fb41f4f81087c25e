package model

// OperationTypeTransfer is the single operation type emitted and accepted by the
// construction pipeline. Debits and credits are distinguished by amount sign.
const OperationTypeTransfer = "TRANSFER"

// Operation describes a signed value movement against an address.
// A negative amount is a debit (spend), a non-negative amount a credit.
type Operation struct {
	Index   int64
	Type    string
	Status  string
	Address string
	Amount  int64
	Coin    Coin
}

// BalanceRequirement is the aggregate amount that must be sourced from an address
// to cover its debit operations.
type BalanceRequirement struct {
	Address  string
	Satoshis uint64
}

// UnspentOutput is a spendable output reported by the UTXO index.
type UnspentOutput struct {
	TxID     string
	Vout     uint32
	Address  string
	Satoshis uint64
	PkScript []byte
}

// TransactionIdentifier carries the canonical reversed double-hash of a transaction.
type TransactionIdentifier struct {
	Hash string
}
