package model

import (
	"encoding/json"
	"fmt"
)

// EnvelopeVersion tags the wire form of both envelope types so fields can be
// added later without re-parsing ambiguity.
const EnvelopeVersion = 1

// UnsignedEnvelope packages an unsigned transaction skeleton together with the
// per-input side data later stages cannot re-derive from the raw bytes alone:
// legacy signature hashing needs each input's spent output script, and parse
// needs the spent amounts and owning addresses.
//
// InputScripts, InputAmounts and InputAddresses are indexed identically to the
// transaction's own input order.
type UnsignedEnvelope struct {
	Version        int      `json:"version"`
	RawTx          string   `json:"transaction"`
	InputScripts   []string `json:"input_scripts"`
	InputAmounts   []uint64 `json:"input_amounts"`
	InputAddresses []string `json:"input_addresses"`
}

// SignedEnvelope packages a fully signed transaction. Input amounts are carried
// forward because they are not recoverable from the signed bytes without an
// external input lookup.
type SignedEnvelope struct {
	Version      int      `json:"version"`
	RawTx        string   `json:"transaction"`
	InputAmounts []uint64 `json:"input_amounts"`
}

// SigningPayload is one sighash an external signer must sign, positionally
// aligned with the unsigned transaction's inputs.
type SigningPayload struct {
	Address       string `json:"address"`
	Hash          string `json:"hex_bytes"`
	SignatureType string `json:"signature_type"`
}

// SignatureTypeECDSA is the only signature scheme the pipeline produces
// payloads for.
const SignatureTypeECDSA = "ecdsa"

// Validate checks the envelope's version tag and the alignment invariant
// between its side-data lists.
func (e UnsignedEnvelope) Validate() error {
	if e.Version != EnvelopeVersion {
		return fmt.Errorf("unsupported envelope version %d", e.Version)
	}
	if len(e.InputScripts) != len(e.InputAmounts) || len(e.InputAmounts) != len(e.InputAddresses) {
		return fmt.Errorf("misaligned envelope side data: %d scripts, %d amounts, %d addresses",
			len(e.InputScripts), len(e.InputAmounts), len(e.InputAddresses))
	}
	return nil
}

// Validate checks the envelope's version tag.
func (e SignedEnvelope) Validate() error {
	if e.Version != EnvelopeVersion {
		return fmt.Errorf("unsupported envelope version %d", e.Version)
	}
	return nil
}

// Encode serializes the envelope to its transport form.
func (e UnsignedEnvelope) Encode() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal unsigned envelope: %w", err)
	}
	return string(raw), nil
}

// Encode serializes the envelope to its transport form.
func (e SignedEnvelope) Encode() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal signed envelope: %w", err)
	}
	return string(raw), nil
}

// DecodeUnsignedEnvelope parses and validates an unsigned envelope.
func DecodeUnsignedEnvelope(s string) (UnsignedEnvelope, error) {
	var e UnsignedEnvelope
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return UnsignedEnvelope{}, fmt.Errorf("unmarshal unsigned envelope: %w", err)
	}
	if err := e.Validate(); err != nil {
		return UnsignedEnvelope{}, err
	}
	return e, nil
}

// DecodeSignedEnvelope parses and validates a signed envelope.
func DecodeSignedEnvelope(s string) (SignedEnvelope, error) {
	var e SignedEnvelope
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return SignedEnvelope{}, fmt.Errorf("unmarshal signed envelope: %w", err)
	}
	if err := e.Validate(); err != nil {
		return SignedEnvelope{}, err
	}
	return e, nil
}
