// Package transport exposes the construction pipeline over JSON/HTTP.
package transport

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/txforge7000-backend/internal/construction"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ConstructionService is the pipeline surface the handler exposes.
type ConstructionService interface {
	Derive(ctx context.Context, pubKey []byte, curveType string) (string, error)
	Preprocess(ctx context.Context, ops []model.Operation) ([]model.BalanceRequirement, error)
	Metadata(ctx context.Context, reqs []model.BalanceRequirement) (construction.MetadataResult, error)
	Payloads(ctx context.Context, ops []model.Operation, meta construction.MetadataResult) (construction.PayloadsResult, error)
	Combine(ctx context.Context, env model.UnsignedEnvelope, sigs []construction.Signature) (model.SignedEnvelope, error)
	Hash(ctx context.Context, env model.SignedEnvelope) (model.TransactionIdentifier, error)
	Parse(ctx context.Context, txString string, signed bool) (construction.ParseResult, error)
	Submit(ctx context.Context, env model.SignedEnvelope) (model.TransactionIdentifier, error)
}

// ConstructionHandler serves the eight construction endpoints.
type ConstructionHandler struct {
	logger  *zap.Logger
	service ConstructionService
}

// NewConstructionHandler returns a ConstructionHandler instance.
func NewConstructionHandler(service ConstructionService, logger *zap.Logger) *ConstructionHandler {
	return &ConstructionHandler{logger: logger, service: service}
}

// Routes assembles the handler's mux.
func (h *ConstructionHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/construction/derive", h.Derive)
	mux.HandleFunc("/construction/preprocess", h.Preprocess)
	mux.HandleFunc("/construction/metadata", h.Metadata)
	mux.HandleFunc("/construction/payloads", h.Payloads)
	mux.HandleFunc("/construction/combine", h.Combine)
	mux.HandleFunc("/construction/hash", h.Hash)
	mux.HandleFunc("/construction/parse", h.Parse)
	mux.HandleFunc("/construction/submit", h.Submit)
	return mux
}

type operationRecord struct {
	Index   int64  `json:"index"`
	Type    string `json:"type"`
	Status  string `json:"status,omitempty"`
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type requirementRecord struct {
	Address  string `json:"address"`
	Satoshis uint64 `json:"satoshis"`
}

type unspentOutputRecord struct {
	TxID     string `json:"txid"`
	Vout     uint32 `json:"vout"`
	Address  string `json:"address"`
	Satoshis uint64 `json:"satoshis"`
}

type metadataRecord struct {
	Inputs       []unspentOutputRecord `json:"inputs"`
	Scripts      []string              `json:"scripts"`
	Change       uint64                `json:"change"`
	SuggestedFee []uint64              `json:"suggested_fee"`
}

type deriveRequest struct {
	PublicKey string `json:"public_key"`
	CurveType string `json:"curve_type"`
}

type deriveResponse struct {
	Address string `json:"address"`
}

// Derive converts a public key into a network address.
func (h *ConstructionHandler) Derive(w http.ResponseWriter, r *http.Request) {
	var req deriveRequest
	if !h.decode(w, r, &req) {
		return
	}

	pubKey, err := hex.DecodeString(req.PublicKey)
	if err != nil {
		h.writeError(w, &construction.Error{Kind: construction.KindAddressDerivationFailed, Err: err})
		return
	}

	address, err := h.service.Derive(r.Context(), pubKey, req.CurveType)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, deriveResponse{Address: address})
}

type preprocessRequest struct {
	Operations []operationRecord `json:"operations"`
}

type preprocessResponse struct {
	Requirements []requirementRecord `json:"requirements"`
}

// Preprocess aggregates debit operations into per-address balance requirements.
func (h *ConstructionHandler) Preprocess(w http.ResponseWriter, r *http.Request) {
	var req preprocessRequest
	if !h.decode(w, r, &req) {
		return
	}

	reqs, err := h.service.Preprocess(r.Context(), operationsFromRecords(req.Operations))
	if err != nil {
		h.writeError(w, err)
		return
	}

	records := make([]requirementRecord, 0, len(reqs))
	for _, br := range reqs {
		records = append(records, requirementRecord{Address: br.Address, Satoshis: br.Satoshis})
	}
	h.writeJSON(w, http.StatusOK, preprocessResponse{Requirements: records})
}

type metadataRequest struct {
	Requirements []requirementRecord `json:"requirements"`
}

type metadataResponse struct {
	Metadata metadataRecord `json:"metadata"`
}

// Metadata selects spendable outputs covering each balance requirement.
func (h *ConstructionHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	var req metadataRequest
	if !h.decode(w, r, &req) {
		return
	}

	reqs := make([]model.BalanceRequirement, 0, len(req.Requirements))
	for _, rr := range req.Requirements {
		reqs = append(reqs, model.BalanceRequirement{Address: rr.Address, Satoshis: rr.Satoshis})
	}

	meta, err := h.service.Metadata(r.Context(), reqs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, metadataResponse{Metadata: metadataToRecord(meta)})
}

type payloadsRequest struct {
	Operations []operationRecord `json:"operations"`
	Metadata   metadataRecord    `json:"metadata"`
}

type signingPayloadRecord struct {
	Address       string `json:"address"`
	HexBytes      string `json:"hex_bytes"`
	SignatureType string `json:"signature_type"`
}

type payloadsResponse struct {
	UnsignedTransaction string                 `json:"unsigned_transaction"`
	Payloads            []signingPayloadRecord `json:"payloads"`
}

// Payloads builds the unsigned transaction and its signing payloads.
func (h *ConstructionHandler) Payloads(w http.ResponseWriter, r *http.Request) {
	var req payloadsRequest
	if !h.decode(w, r, &req) {
		return
	}

	meta, err := metadataFromRecord(req.Metadata)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.service.Payloads(r.Context(), operationsFromRecords(req.Operations), meta)
	if err != nil {
		h.writeError(w, err)
		return
	}

	encoded, err := result.Envelope.Encode()
	if err != nil {
		h.writeError(w, err)
		return
	}

	payloads := make([]signingPayloadRecord, 0, len(result.Payloads))
	for _, p := range result.Payloads {
		payloads = append(payloads, signingPayloadRecord{
			Address:       p.Address,
			HexBytes:      p.Hash,
			SignatureType: p.SignatureType,
		})
	}
	h.writeJSON(w, http.StatusOK, payloadsResponse{UnsignedTransaction: encoded, Payloads: payloads})
}

type signatureRecord struct {
	PublicKey string `json:"public_key"`
	HexBytes  string `json:"hex_bytes"`
}

type combineRequest struct {
	UnsignedTransaction string            `json:"unsigned_transaction"`
	Signatures          []signatureRecord `json:"signatures"`
}

type combineResponse struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Combine installs externally produced signatures into the transaction.
func (h *ConstructionHandler) Combine(w http.ResponseWriter, r *http.Request) {
	var req combineRequest
	if !h.decode(w, r, &req) {
		return
	}

	env, err := model.DecodeUnsignedEnvelope(req.UnsignedTransaction)
	if err != nil {
		h.writeError(w, &construction.Error{Kind: construction.KindMalformedEnvelope, Err: err})
		return
	}

	sigs := make([]construction.Signature, 0, len(req.Signatures))
	for _, sr := range req.Signatures {
		pubKey, decodeErr := hex.DecodeString(sr.PublicKey)
		if decodeErr != nil {
			h.writeError(w, &construction.Error{Kind: construction.KindMalformedEnvelope, Err: decodeErr})
			return
		}
		sigBytes, decodeErr := hex.DecodeString(sr.HexBytes)
		if decodeErr != nil {
			h.writeError(w, &construction.Error{Kind: construction.KindMalformedEnvelope, Err: decodeErr})
			return
		}
		sigs = append(sigs, construction.Signature{PubKey: pubKey, Bytes: sigBytes})
	}

	signed, err := h.service.Combine(r.Context(), env, sigs)
	if err != nil {
		h.writeError(w, err)
		return
	}

	encoded, err := signed.Encode()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, combineResponse{SignedTransaction: encoded})
}

type hashRequest struct {
	SignedTransaction string `json:"signed_transaction"`
}

type transactionIdentifierRecord struct {
	Hash string `json:"hash"`
}

type transactionIdentifierResponse struct {
	TransactionIdentifier transactionIdentifierRecord `json:"transaction_identifier"`
}

// Hash computes the canonical identifier of a signed transaction.
func (h *ConstructionHandler) Hash(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if !h.decode(w, r, &req) {
		return
	}

	env, err := model.DecodeSignedEnvelope(req.SignedTransaction)
	if err != nil {
		h.writeError(w, &construction.Error{Kind: construction.KindMalformedEnvelope, Err: err})
		return
	}

	id, err := h.service.Hash(r.Context(), env)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, transactionIdentifierResponse{
		TransactionIdentifier: transactionIdentifierRecord{Hash: id.Hash},
	})
}

type parseRequest struct {
	Transaction string `json:"transaction"`
	Signed      bool   `json:"signed"`
}

type parseResponse struct {
	Operations []operationRecord `json:"operations"`
	Signers    []string          `json:"signers,omitempty"`
}

// Parse recovers the operations behind an unsigned or signed transaction.
func (h *ConstructionHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Parse(r.Context(), req.Transaction, req.Signed)
	if err != nil {
		h.writeError(w, err)
		return
	}

	ops := make([]operationRecord, 0, len(result.Operations))
	for _, op := range result.Operations {
		ops = append(ops, operationRecord{
			Index:   op.Index,
			Type:    op.Type,
			Status:  op.Status,
			Address: op.Address,
			Amount:  op.Amount,
		})
	}
	h.writeJSON(w, http.StatusOK, parseResponse{Operations: ops, Signers: result.Signers})
}

type submitRequest struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Submit broadcasts a signed transaction to the node.
func (h *ConstructionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !h.decode(w, r, &req) {
		return
	}

	env, err := model.DecodeSignedEnvelope(req.SignedTransaction)
	if err != nil {
		h.writeError(w, &construction.Error{Kind: construction.KindMalformedEnvelope, Err: err})
		return
	}

	id, err := h.service.Submit(r.Context(), env)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, transactionIdentifierResponse{
		TransactionIdentifier: transactionIdentifierRecord{Hash: id.Hash},
	})
}

func operationsFromRecords(records []operationRecord) []model.Operation {
	ops := make([]model.Operation, 0, len(records))
	for _, rec := range records {
		ops = append(ops, model.Operation{
			Index:   rec.Index,
			Type:    rec.Type,
			Status:  rec.Status,
			Address: rec.Address,
			Amount:  rec.Amount,
		})
	}
	return ops
}

func metadataToRecord(meta construction.MetadataResult) metadataRecord {
	inputs := make([]unspentOutputRecord, 0, len(meta.Inputs))
	for _, in := range meta.Inputs {
		inputs = append(inputs, unspentOutputRecord{
			TxID:     in.TxID,
			Vout:     in.Vout,
			Address:  in.Address,
			Satoshis: in.Satoshis,
		})
	}
	scripts := make([]string, 0, len(meta.Scripts))
	for _, script := range meta.Scripts {
		scripts = append(scripts, hex.EncodeToString(script))
	}
	return metadataRecord{
		Inputs:       inputs,
		Scripts:      scripts,
		Change:       meta.Change,
		SuggestedFee: meta.SuggestedFee,
	}
}

func metadataFromRecord(rec metadataRecord) (construction.MetadataResult, error) {
	// Scripts travel in a parallel list on the wire. Each one is rejoined
	// onto its input here so the sighash stage sees the spent output script.
	if len(rec.Scripts) != len(rec.Inputs) {
		return construction.MetadataResult{}, &construction.Error{
			Kind: construction.KindExpectedRelevantInputs,
			Err:  fmt.Errorf("%d scripts for %d inputs", len(rec.Scripts), len(rec.Inputs)),
		}
	}

	inputs := make([]model.UnspentOutput, 0, len(rec.Inputs))
	scripts := make([][]byte, 0, len(rec.Scripts))
	for i, in := range rec.Inputs {
		script, err := hex.DecodeString(rec.Scripts[i])
		if err != nil {
			return construction.MetadataResult{}, &construction.Error{Kind: construction.KindExpectedRelevantInputs, Err: err}
		}
		inputs = append(inputs, model.UnspentOutput{
			TxID:     in.TxID,
			Vout:     in.Vout,
			Address:  in.Address,
			Satoshis: in.Satoshis,
			PkScript: script,
		})
		scripts = append(scripts, script)
	}
	return construction.MetadataResult{
		Inputs:       inputs,
		Scripts:      scripts,
		Change:       rec.Change,
		SuggestedFee: rec.SuggestedFee,
	}, nil
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Address   string `json:"address,omitempty"`
	Retriable bool   `json:"retriable"`
}

func (h *ConstructionHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
			Code:    "method_not_allowed",
			Message: "construction endpoints accept POST only",
		})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "invalid_request",
			Message: err.Error(),
		})
		return false
	}
	return true
}

func (h *ConstructionHandler) writeError(w http.ResponseWriter, err error) {
	kind := construction.KindOf(err)
	status := statusForKind(kind)
	code := string(kind)
	if code == "" {
		code = "internal"
	}

	var address string
	var pipelineErr *construction.Error
	if errors.As(err, &pipelineErr) {
		address = pipelineErr.Address
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("construction request failed", zap.String("code", code), zap.Error(err))
	}

	h.writeJSON(w, status, errorResponse{
		Code:    code,
		Message: err.Error(),
		Address: address,
	})
}

func statusForKind(kind construction.Kind) int {
	switch kind {
	case construction.KindInvalidCurveType,
		construction.KindAddressDerivationFailed,
		construction.KindExpectedRequiredAccounts,
		construction.KindInsufficientBalance,
		construction.KindExpectedRelevantInputs,
		construction.KindSignatureCountMismatch,
		construction.KindMalformedEnvelope:
		return http.StatusBadRequest
	case construction.KindIndexUnavailable, construction.KindSubmitFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *ConstructionHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}
