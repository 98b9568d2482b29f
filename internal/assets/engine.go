package assets

// Config holds the deposit-tuning constants and bounded-string limit the
// engine needs: deposit-tuning constants and the bounded-string
// limit. Defaults below match the reference pallet's mock test
// values (AssetDeposit=1, AssetAccountDeposit=10, MetadataDepositBase=1,
// MetadataDepositPerByte=1, ApprovalDeposit=1, StringLimit=50) and are wired
// through internal/config's viper loader for the CLI.
type Config struct {
	AssetDeposit           uint64
	AssetAccountDeposit    uint64
	MetadataDepositBase    uint64
	MetadataDepositPerByte uint64
	ApprovalDeposit        uint64
	StringLimit            uint32
	// MetadataDecimals is the fixed decimals value create() stamps onto new
	// assets.
	MetadataDecimals uint8
}

// DefaultConfig returns the reference deposit constants used by tests and the
// CLI demo.
func DefaultConfig() Config {
	return Config{
		AssetDeposit:           1,
		AssetAccountDeposit:    10,
		MetadataDepositBase:    1,
		MetadataDepositPerByte: 1,
		ApprovalDeposit:        1,
		StringLimit:            50,
		MetadataDecimals:       9,
	}
}

// Engine is the transfer/mint/burn/approval/destroy engine: pure decision
// logic over the Store, delegating deposit bookkeeping
// to Currency and reference-count bookkeeping to AccountLifecycle. One Engine
// instance owns one logical ledger.
type Engine struct {
	store     Store
	currency  Currency
	lifecycle AccountLifecycle
	ids       *IdentifierService
	cfg       Config
	died      func(asset AssetId, who AccountId)
}

// NewEngine wires the four collaborators (store, currency, lifecycle,
// randomness-backed id service) into one engine.
func NewEngine(store Store, currency Currency, lifecycle AccountLifecycle, ids *IdentifierService, cfg Config) *Engine {
	return &Engine{store: store, currency: currency, lifecycle: lifecycle, ids: ids, cfg: cfg}
}

// OnAccountDied registers the hook fired once per asset-account reaped by
// burn/transfer/refund/destroy. Passing nil disables the hook. The embedding
// runtime typically uses this to release whatever external state it keys off
// (asset, holder) pairs.
func (e *Engine) OnAccountDied(fn func(asset AssetId, who AccountId)) {
	e.died = fn
}

// run executes fn against a fresh transaction, committing on success (nil
// error) and rolling back otherwise — the mechanical realization of "either
// the full effect of a command is applied... or the command fails... and
// leaves state untouched.
func (e *Engine) run(fn func(t Txn) ([]Event, error)) ([]Event, error) {
	t := e.store.Begin()
	events, err := fn(t)
	if err != nil {
		t.Rollback()
		return nil, err
	}
	t.Commit()
	return events, nil
}

func boundedStringOK(limit uint32, s []byte) bool {
	return uint32(len(s)) <= limit
}
