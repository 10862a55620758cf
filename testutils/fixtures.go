package testutils

// Keys and hashes shared by the tests and the mock relay defaults.
const (
	ProposerPubkeyHex = "0x82f6e7cc57a2ce68ec41321bebc55bcb31945fe66a8e67eb8251425fab4c6a38c10c53210aea9796dd0ba0441b46762a"
	BuilderPubkeyHex  = "0xa057816155ad77931185101128655c0191bd0214c201ca48ed887f6c4c6adf334070efcd75140eada5ac83a92506dd7a"
	ParentHashHex     = "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab7"
	BlockHashHex      = "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab1"
	FeeRecipientHex   = "0x8012345678901234567890123456789012345678"
)

// BidDeliveredJSON is a single proposer_payload_delivered entry with numeric fields sent as strings.
const BidDeliveredJSON = `{
	"slot": "7898580",
	"parent_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab7",
	"block_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab1",
	"builder_pubkey": "0xa057816155ad77931185101128655c0191bd0214c201ca48ed887f6c4c6adf334070efcd75140eada5ac83a92506dd7a",
	"proposer_pubkey": "0x82f6e7cc57a2ce68ec41321bebc55bcb31945fe66a8e67eb8251425fab4c6a38c10c53210aea9796dd0ba0441b46762a",
	"proposer_fee_recipient": "0x8012345678901234567890123456789012345678",
	"gas_limit": "30000000",
	"gas_used": "12345678",
	"value": "51234567891234567",
	"block_number": "123",
	"num_tx": "150"
}`

// BidDeliveredNumbersJSON is BidDeliveredJSON with block_number and num_tx sent as JSON numbers.
const BidDeliveredNumbersJSON = `{
	"slot": "7898580",
	"parent_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab7",
	"block_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab1",
	"builder_pubkey": "0xa057816155ad77931185101128655c0191bd0214c201ca48ed887f6c4c6adf334070efcd75140eada5ac83a92506dd7a",
	"proposer_pubkey": "0x82f6e7cc57a2ce68ec41321bebc55bcb31945fe66a8e67eb8251425fab4c6a38c10c53210aea9796dd0ba0441b46762a",
	"proposer_fee_recipient": "0x8012345678901234567890123456789012345678",
	"gas_limit": "30000000",
	"gas_used": "12345678",
	"value": "51234567891234567",
	"block_number": 123,
	"num_tx": 150
}`

// BidReceivedJSON is a single builder_blocks_received entry.
const BidReceivedJSON = `{
	"slot": "7898580",
	"parent_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab7",
	"block_hash": "0xe28385e7bd68df656cd0042b74b69c3104b5356ed1f20eb69f1f925df47a3ab1",
	"builder_pubkey": "0xa057816155ad77931185101128655c0191bd0214c201ca48ed887f6c4c6adf334070efcd75140eada5ac83a92506dd7a",
	"proposer_pubkey": "0x82f6e7cc57a2ce68ec41321bebc55bcb31945fe66a8e67eb8251425fab4c6a38c10c53210aea9796dd0ba0441b46762a",
	"proposer_fee_recipient": "0x8012345678901234567890123456789012345678",
	"gas_limit": "30000000",
	"gas_used": "12345678",
	"value": "51234567891234567",
	"block_number": "123",
	"num_tx": "150",
	"timestamp": "1695735611",
	"timestamp_ms": "1695735611123",
	"optimistic_submission": true
}`
