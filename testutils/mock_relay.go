package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	builderApiV1 "github.com/attestantio/go-builder-client/api/v1"
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/flashbots/go-boost-utils/bls"
	"github.com/flashbots/go-boost-utils/ssz"
	"github.com/flashbots/relay-data/relay/params"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

const (
	mockValidatorSecretKeyHex = "0x4e343a647c5a5c44d76c2c58b63f02cdf3a9a0ec40f102ebc26363b4b1b95033"

	maxLimit     = 100
	defaultLimit = 100
)

var (
	skBytes, _                = hexutil.Decode(mockValidatorSecretKeyHex)
	mockValidatorSecretKey, _ = bls.SecretKeyFromBytes(skBytes)
	mockValidatorPublicKey, _ = bls.PublicKeyFromSecretKey(mockValidatorSecretKey)
)

// BidTraceJSON is a delivered payload as a relay serves it, every number is a decimal string.
type BidTraceJSON struct {
	Slot                 uint64 `json:"slot,string"`
	ParentHash           string `json:"parent_hash"`
	BlockHash            string `json:"block_hash"`
	BuilderPubkey        string `json:"builder_pubkey"`
	ProposerPubkey       string `json:"proposer_pubkey"`
	ProposerFeeRecipient string `json:"proposer_fee_recipient"`
	GasLimit             uint64 `json:"gas_limit,string"`
	GasUsed              uint64 `json:"gas_used,string"`
	Value                string `json:"value"`
	BlockNumber          uint64 `json:"block_number,string"`
	NumTx                uint64 `json:"num_tx,string"`
}

// BidTraceWithTimestampJSON is a builder submission as a relay serves it.
type BidTraceWithTimestampJSON struct {
	BidTraceJSON
	Timestamp            int64 `json:"timestamp,string"`
	TimestampMs          int64 `json:"timestamp_ms,string"`
	OptimisticSubmission bool  `json:"optimistic_submission"`
}

type httpErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MockRelay serves the relay data API from in-memory records.
// You can override each of its handler by setting the instance's handlerOverride through the Override methods.
type MockRelay struct {
	// Used to panic if impossible error happens
	t *testing.T

	// KeyPair of the validator whose registration is served
	secretKey       *bls.SecretKey
	publicKey       *bls.PublicKey
	ValidatorPubkey phase0.BLSPubKey

	// Used to count each Request made to the relay, either if it fails or not, for each path
	mu           sync.Mutex
	requestCount map[string]int
	lastQuery    map[string]url.Values

	// Overriders
	handlerOverrideBidsDelivered         func(w http.ResponseWriter, req *http.Request)
	handlerOverrideBidsReceived          func(w http.ResponseWriter, req *http.Request)
	handlerOverrideValidatorRegistration func(w http.ResponseWriter, req *http.Request)

	// Records served by the default handlers
	DeliveredPayloads  []BidTraceJSON
	BuilderSubmissions []BidTraceWithTimestampJSON
	Registrations      map[string]*builderApiV1.SignedValidatorRegistration

	// Server section
	Server        *httptest.Server
	ResponseDelay time.Duration
}

// NewMockRelay starts a mocked relay seeded with one delivered payload, one builder submission and a signed
// registration for ValidatorPubkey.
func NewMockRelay(t *testing.T) *MockRelay {
	t.Helper()
	relay := &MockRelay{
		t:             t,
		secretKey:     mockValidatorSecretKey,
		publicKey:     mockValidatorPublicKey,
		requestCount:  make(map[string]int),
		lastQuery:     make(map[string]url.Values),
		Registrations: make(map[string]*builderApiV1.SignedValidatorRegistration),
	}
	copy(relay.ValidatorPubkey[:], bls.PublicKeyToBytes(mockValidatorPublicKey))

	relay.DeliveredPayloads = []BidTraceJSON{DefaultBidTrace()}
	relay.BuilderSubmissions = []BidTraceWithTimestampJSON{{
		BidTraceJSON:         DefaultBidTrace(),
		Timestamp:            1695735611,
		TimestampMs:          1695735611123,
		OptimisticSubmission: true,
	}}
	reg := relay.MakeValidatorRegistration(FeeRecipientHex, 30000000, time.Unix(1695735600, 0))
	relay.Registrations[hexutil.Encode(relay.ValidatorPubkey[:])] = reg

	// Initialize server
	relay.Server = httptest.NewServer(relay.getRouter())
	t.Cleanup(relay.Server.Close)
	return relay
}

// DefaultBidTrace returns the record encoded by BidDeliveredJSON.
func DefaultBidTrace() BidTraceJSON {
	return BidTraceJSON{
		Slot:                 7898580,
		ParentHash:           ParentHashHex,
		BlockHash:            BlockHashHex,
		BuilderPubkey:        BuilderPubkeyHex,
		ProposerPubkey:       ProposerPubkeyHex,
		ProposerFeeRecipient: FeeRecipientHex,
		GasLimit:             30000000,
		GasUsed:              12345678,
		Value:                "51234567891234567",
		BlockNumber:          123,
		NumTx:                150,
	}
}

// newTestMiddleware creates a middleware which increases the Request counter, records the query and creates a
// fake delay for the response
func (m *MockRelay) newTestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			m.mu.Lock()
			path := r.URL.EscapedPath()
			m.requestCount[path]++
			m.lastQuery[path] = r.URL.Query()
			m.mu.Unlock()

			// Artificial Delay
			if m.ResponseDelay > 0 {
				time.Sleep(m.ResponseDelay)
			}

			next.ServeHTTP(w, r)
		},
	)
}

// getRouter registers the data API handlers, applies the test middleware and returns the configured router
func (m *MockRelay) getRouter() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(params.PathDataProposerPayloadDelivered, m.handleBidsDelivered).Methods(http.MethodGet)
	r.HandleFunc(params.PathDataBuilderBidsReceived, m.handleBidsReceived).Methods(http.MethodGet)
	r.HandleFunc(params.PathDataValidatorRegistration, m.handleValidatorRegistration).Methods(http.MethodGet)
	return m.newTestMiddleware(r)
}

// GetRequestCount returns the number of Request made to a specific path
func (m *MockRelay) GetRequestCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[path]
}

// LastQuery returns the query arguments of the latest request to path
func (m *MockRelay) LastQuery(path string) url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery[path]
}

func (m *MockRelay) OverrideHandleBidsDelivered(method func(w http.ResponseWriter, req *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlerOverrideBidsDelivered = method
}

func (m *MockRelay) OverrideHandleBidsReceived(method func(w http.ResponseWriter, req *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlerOverrideBidsReceived = method
}

func (m *MockRelay) OverrideHandleValidatorRegistration(method func(w http.ResponseWriter, req *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlerOverrideValidatorRegistration = method
}

// MakeValidatorRegistration creates a registration for ValidatorPubkey signed in the mainnet builder domain
func (m *MockRelay) MakeValidatorRegistration(feeRecipient string, gasLimit uint64, timestamp time.Time) *builderApiV1.SignedValidatorRegistration {
	message := &builderApiV1.ValidatorRegistration{
		FeeRecipient: HexToAddressP(feeRecipient),
		GasLimit:     gasLimit,
		Timestamp:    timestamp,
		Pubkey:       m.ValidatorPubkey,
	}

	signature, err := ssz.SignMessage(message, ssz.DomainBuilder, m.secretKey)
	require.NoError(m.t, err)

	return &builderApiV1.SignedValidatorRegistration{
		Message:   message,
		Signature: signature,
	}
}

func (m *MockRelay) handleBidsDelivered(w http.ResponseWriter, req *http.Request) {
	m.mu.Lock()
	override := m.handlerOverrideBidsDelivered
	m.mu.Unlock()
	if override != nil {
		override(w, req)
		return
	}

	args := req.URL.Query()
	if args.Get(params.ArgSlot) != "" && args.Get(params.ArgCursor) != "" {
		m.respondError(w, http.StatusBadRequest, "cannot specify both slot and cursor")
		return
	}

	f, err := parseFilter(args)
	if err != nil {
		m.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cursor, err := parseOptionalUint(args, params.ArgCursor)
	if err != nil {
		m.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	proposerPubkey := strings.ToLower(args.Get(params.ArgProposerPubkey))
	orderBy := args.Get(params.ArgOrderBy)
	if orderBy != "" && orderBy != "value" && orderBy != "-value" {
		m.respondError(w, http.StatusBadRequest, "invalid order_by argument")
		return
	}

	m.mu.Lock()
	res := make([]BidTraceJSON, 0, len(m.DeliveredPayloads))
	for _, bid := range m.DeliveredPayloads {
		if !f.match(bid) {
			continue
		}
		if cursor != nil && bid.Slot > *cursor {
			continue
		}
		if proposerPubkey != "" && strings.ToLower(bid.ProposerPubkey) != proposerPubkey {
			continue
		}
		res = append(res, bid)
	}
	m.mu.Unlock()

	switch orderBy {
	case "value":
		sort.SliceStable(res, func(i, j int) bool { return bidValue(res[i]).Lt(bidValue(res[j])) })
	case "-value":
		sort.SliceStable(res, func(i, j int) bool { return bidValue(res[i]).Gt(bidValue(res[j])) })
	default:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Slot > res[j].Slot })
	}

	if uint64(len(res)) > f.limit {
		res = res[:f.limit]
	}
	m.respondOK(w, res)
}

func (m *MockRelay) handleBidsReceived(w http.ResponseWriter, req *http.Request) {
	m.mu.Lock()
	override := m.handlerOverrideBidsReceived
	m.mu.Unlock()
	if override != nil {
		override(w, req)
		return
	}

	args := req.URL.Query()
	if args.Get(params.ArgCursor) != "" {
		m.respondError(w, http.StatusBadRequest, "cursor argument not supported on this API")
		return
	}

	f, err := parseFilter(args)
	if err != nil {
		m.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if f.slot == nil && f.blockHash == "" && f.blockNumber == nil && f.builderPubkey == "" {
		m.respondError(w, http.StatusBadRequest, "need to query for specific slot or block_hash or block_number or builder_pubkey")
		return
	}

	m.mu.Lock()
	res := make([]BidTraceWithTimestampJSON, 0, len(m.BuilderSubmissions))
	for _, bid := range m.BuilderSubmissions {
		if f.match(bid.BidTraceJSON) {
			res = append(res, bid)
		}
	}
	m.mu.Unlock()

	if uint64(len(res)) > f.limit {
		res = res[:f.limit]
	}
	m.respondOK(w, res)
}

func (m *MockRelay) handleValidatorRegistration(w http.ResponseWriter, req *http.Request) {
	m.mu.Lock()
	override := m.handlerOverrideValidatorRegistration
	m.mu.Unlock()
	if override != nil {
		override(w, req)
		return
	}

	pubkey := strings.ToLower(req.URL.Query().Get(params.ArgPubkey))
	if pubkey == "" {
		m.respondError(w, http.StatusBadRequest, "missing pubkey argument")
		return
	}

	m.mu.Lock()
	reg, ok := m.Registrations[pubkey]
	m.mu.Unlock()
	if !ok {
		m.respondError(w, http.StatusBadRequest, "no registration found for validator "+pubkey)
		return
	}
	m.respondOK(w, reg)
}

func (m *MockRelay) respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(httpErrorResp{code, message}); err != nil {
		TestLog.WithError(err).Error("could not write error response")
	}
}

func (m *MockRelay) respondOK(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		TestLog.WithError(err).Error("could not write OK response")
	}
}

type bidFilter struct {
	slot          *uint64
	blockNumber   *uint64
	blockHash     string
	builderPubkey string
	limit         uint64
}

func parseFilter(args url.Values) (*bidFilter, error) {
	f := &bidFilter{
		blockHash:     strings.ToLower(args.Get(params.ArgBlockHash)),
		builderPubkey: strings.ToLower(args.Get(params.ArgBuilderPubkey)),
		limit:         defaultLimit,
	}

	var err error
	if f.slot, err = parseOptionalUint(args, params.ArgSlot); err != nil {
		return nil, err
	}
	if f.blockNumber, err = parseOptionalUint(args, params.ArgBlockNumber); err != nil {
		return nil, err
	}

	limit, err := parseOptionalUint(args, params.ArgLimit)
	if err != nil {
		return nil, err
	}
	if limit != nil {
		if *limit > maxLimit {
			return nil, fmt.Errorf("maximum limit is %d", maxLimit)
		}
		f.limit = *limit
	}
	return f, nil
}

func (f *bidFilter) match(bid BidTraceJSON) bool {
	if f.slot != nil && bid.Slot != *f.slot {
		return false
	}
	if f.blockNumber != nil && bid.BlockNumber != *f.blockNumber {
		return false
	}
	if f.blockHash != "" && strings.ToLower(bid.BlockHash) != f.blockHash {
		return false
	}
	if f.builderPubkey != "" && strings.ToLower(bid.BuilderPubkey) != f.builderPubkey {
		return false
	}
	return true
}

func parseOptionalUint(args url.Values, key string) (*uint64, error) {
	s := args.Get(key)
	if s == "" {
		return nil, nil //nolint:nilnil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s argument", key)
	}
	return &v, nil
}

func bidValue(bid BidTraceJSON) *uint256.Int {
	v, err := uint256.FromDecimal(bid.Value)
	if err != nil {
		return uint256.NewInt(0)
	}
	return v
}
