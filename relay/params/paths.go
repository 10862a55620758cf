package params

// Router paths
const (
	PathDataProposerPayloadDelivered = "/relay/v1/data/bidtraces/proposer_payload_delivered"
	PathDataBuilderBidsReceived      = "/relay/v1/data/bidtraces/builder_blocks_received"
	PathDataValidatorRegistration    = "/relay/v1/data/validator_registration"
)

// Query argument keys
const (
	ArgSlot           = "slot"
	ArgCursor         = "cursor"
	ArgLimit          = "limit"
	ArgBlockHash      = "block_hash"
	ArgBlockNumber    = "block_number"
	ArgProposerPubkey = "proposer_pubkey"
	ArgBuilderPubkey  = "builder_pubkey"
	ArgOrderBy        = "order_by"
	ArgPubkey         = "pubkey"
)
