package assets

// AssetId is an opaque fixed-width identifier for an asset class. Equality and
// hashing are its only operations — callers must never parse or derive meaning
// from its bytes.
type AssetId [24]byte

// AccountId identifies a caller or holder. The external account-lifecycle and
// native-currency adapters key off the same identifier.
type AccountId [20]byte

// Reason controls reaping policy and who is owed a deposit refund on account
// destruction.
type Reason int

const (
	// ReasonConsumer means the account's existence is backed by a consumer
	// reference on the external account ledger (asset is not sufficient).
	ReasonConsumer Reason = iota
	// ReasonSufficient means the asset class itself is sufficient; the account
	// needs no external provider reference.
	ReasonSufficient
	// ReasonDepositHeld means the account paid AssetAccountDeposit via touch and
	// is backed by an explicit native-currency reservation.
	ReasonDepositHeld
)

// AssetDetails is the per-asset-class registry entry.
type AssetDetails struct {
	Owner   AccountId
	Issuer  AccountId
	Admin   AccountId
	Freezer AccountId

	Supply     uint64
	MinBalance uint64

	IsSufficient bool
	IsFrozen     bool

	Deposit uint64

	Accounts    uint32
	Sufficients uint32
	Approvals   uint32
}

// AssetAccount is the per-(asset, holder) ledger entry.
type AssetAccount struct {
	Balance  uint64
	IsFrozen bool
	Reason   Reason
	// Deposit is only meaningful when Reason == ReasonDepositHeld: the amount
	// reserved against the holder backing this account's existence.
	Deposit uint64
	Extra   []byte
}

// AssetMetadata is the per-asset-class metadata entry.
type AssetMetadata struct {
	Name     []byte
	Symbol   []byte
	URL      []byte
	DataIPFS []byte
	Decimals uint8
	IsFrozen bool
	Deposit  uint64
}

// Approval is a single (owner, delegate) delegated-transfer allowance.
type Approval struct {
	Amount  uint64
	Deposit uint64
}

// approvalKey identifies a live approval within one asset class.
type approvalKey struct {
	Owner    AccountId
	Delegate AccountId
}

// accountKey identifies a live asset-account within one asset class.
type accountKey = AccountId
