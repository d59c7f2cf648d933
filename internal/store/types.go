package store

import "time"

// ConnectionDetails is the six identifiers a successful connect()
// leaves on the chain row; when present, all six are valid identifiers
// addressing live IBC objects on both sides.
type ConnectionDetails struct {
	SoloMachineClientID     string `json:"solo_machine_client_id"`
	TendermintClientID      string `json:"tendermint_client_id"`
	SoloMachineConnectionID string `json:"solo_machine_connection_id"`
	TendermintConnectionID  string `json:"tendermint_connection_id"`
	SoloMachineChannelID    string `json:"solo_machine_channel_id"`
	TendermintChannelID     string `json:"tendermint_channel_id"`
}

// Valid reports whether all six identifiers are populated.
func (d *ConnectionDetails) Valid() bool {
	return d != nil &&
		d.SoloMachineClientID != "" && d.TendermintClientID != "" &&
		d.SoloMachineConnectionID != "" && d.TendermintConnectionID != "" &&
		d.SoloMachineChannelID != "" && d.TendermintChannelID != ""
}

// ChainConfigRow is the immutable registration-time configuration
// persisted alongside a chain: the fields of internal/config.ChainConfig
// except Memo, which is not persisted.
type ChainConfigRow struct {
	GRPCAddr        string `json:"grpc_addr"`
	RPCAddr         string `json:"rpc_addr"`
	FeeAmount       string `json:"fee_amount"`
	FeeDenom        string `json:"fee_denom"`
	FeeGasLimit     uint64 `json:"fee_gas_limit"`
	TrustLevelNum   uint64 `json:"trust_level_num"`
	TrustLevelDenom uint64 `json:"trust_level_denom"`
	TrustingPeriod  int64  `json:"trusting_period_ns"`
	MaxClockDrift   int64  `json:"max_clock_drift_ns"`
	RPCTimeout      int64  `json:"rpc_timeout_ns"`
	Diversifier     string `json:"diversifier"`
	PortID          string `json:"port_id"`
	TrustedHeight   uint64 `json:"trusted_height"`
	TrustedHash     string `json:"trusted_hash"` // hex-upper, 32 bytes
}

// Chain is the persisted row for one registered solo machine.
type Chain struct {
	ID                 string
	NodeID             string
	Config             ChainConfigRow
	ConsensusTimestamp uint64
	Sequence           uint64
	PacketSequence     uint64
	ConnectionDetails  *ConnectionDetails
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AccountOperationType tags why an account's balance changed; stored as
// JSON in account_operations.operation_type so the history command can
// render it without a join.
type AccountOperationType struct {
	Kind    string `json:"kind"` // "mint" | "burn" | "send" | "receive"
	ChainID string `json:"chain_id,omitempty"`
}

// AccountOperation is one append-only ledger entry.
type AccountOperation struct {
	ID            int64
	Address       string
	Denom         string
	Amount        string // signed decimal string
	OperationType AccountOperationType
	CreatedAt     time.Time
}

// ChainKey is one historical public key recorded for a chain, hex-upper
// encoded per §6's persisted-layout note.
type ChainKey struct {
	ID        int64
	ChainID   string
	PublicKey string
	CreatedAt time.Time
}
