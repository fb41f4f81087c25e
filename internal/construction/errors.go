package construction

import (
	"errors"
	"fmt"
)

// Kind discriminates pipeline errors so callers can handle every failure mode
// explicitly instead of matching on message text.
type Kind string

var (
	KindInvalidCurveType         Kind = "invalid_curve_type"
	KindAddressDerivationFailed  Kind = "address_derivation_failed"
	KindExpectedRequiredAccounts Kind = "expected_required_accounts"
	KindInsufficientBalance      Kind = "insufficient_balance"
	KindExpectedRelevantInputs   Kind = "expected_relevant_inputs"
	KindSignatureCountMismatch   Kind = "signature_count_mismatch"
	KindMalformedEnvelope        Kind = "malformed_envelope"
	KindIndexUnavailable         Kind = "index_unavailable"
	KindSubmitFailed             Kind = "submit_failed"
)

// Error is the single error type every stage returns. Validation and resource
// errors are terminal for the request; external-collaborator errors wrap the
// underlying cause without retrying.
type Error struct {
	Kind    Kind
	Address string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Address != "" {
		msg = fmt.Sprintf("%s: address %s", msg, e.Address)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the discriminated kind from any error in the chain, or ""
// if the error did not originate in the pipeline.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
