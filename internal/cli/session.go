package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/dkuanyshbaev/carbonledger/internal/assets"
	"github.com/dkuanyshbaev/carbonledger/internal/config"
	"github.com/dkuanyshbaev/carbonledger/internal/ledgerjournal"
)

// Session wires one Engine and its collaborators together for the lifetime
// of a single CLI invocation, optionally backed by an on-disk journal so
// state survives across separate process runs.
type Session struct {
	cfg       config.Config
	engine    *assets.Engine
	currency  *assets.InMemoryCurrency
	lifecycle *assets.InMemoryLifecycle
	store     *assets.MemStore
	journal   *ledgerjournal.Journal
}

// NewSession loads the store (from the journal if cfg.JournalPath is set,
// otherwise a fresh in-memory store) and wires an Engine against it.
func NewSession(cfg config.Config) (*Session, error) {
	var (
		store   *assets.MemStore
		journal *ledgerjournal.Journal
		err     error
	)

	if cfg.JournalPath != "" {
		journal, err = ledgerjournal.Open(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		store, err = journal.Load()
		if err != nil {
			return nil, fmt.Errorf("load journal: %w", err)
		}
	} else {
		store = assets.NewMemStore()
	}

	currency := assets.NewInMemoryCurrency(cfg.NativeMinBalance)
	lifecycle := assets.NewInMemoryLifecycle()
	beacon := assets.NewDeterministicBeacon(cfg.BeaconSeed)
	ids := assets.NewIdentifierService(beacon, cfg.IDCacheSize)

	engine := assets.NewEngine(store, currency, lifecycle, ids, cfg.EngineConfig())
	engine.OnAccountDied(func(asset assets.AssetId, who assets.AccountId) {
		if verbose {
			fmt.Printf("account died: asset=%s who=%s\n", formatAssetID(asset), hex.EncodeToString(who[:]))
		}
	})

	return &Session{
		cfg:       cfg,
		engine:    engine,
		currency:  currency,
		lifecycle: lifecycle,
		store:     store,
		journal:   journal,
	}, nil
}

// Close persists the store to the journal (if one is configured) and closes
// it. It is a no-op when the session is purely in-memory.
func (s *Session) Close() error {
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Save(s.store); err != nil {
		return err
	}
	return s.journal.Close()
}

// run dispatches cmd against the session's engine, persisting the store to
// the journal (when configured) on success so every command's effects are
// durable by the time the CLI process exits.
func (s *Session) run(cmd assets.Command) ([]assets.Event, error) {
	events, err := s.engine.Dispatch(cmd)
	if err != nil {
		return nil, err
	}
	if s.journal != nil {
		if err := s.journal.Save(s.store); err != nil {
			return events, fmt.Errorf("persist journal: %w", err)
		}
	}
	return events, nil
}

// fund seeds who's free native balance, a CLI-only convenience with no
// pallet analogue — there is no on-chain faucet, only this reference
// in-memory Currency.
func (s *Session) fund(who assets.AccountId, amount uint64) {
	s.currency.SetBalance(who, amount)
}

// setProvider marks who as already holding a provider reference, the
// account-lifecycle precondition non-sufficient assets need to open a
// Consumer-reason account without a deposit.
func (s *Session) setProvider(who assets.AccountId, has bool) {
	s.lifecycle.SetProvider(who, has)
}

// parseAccountID decodes a hex-encoded account identifier, left-padding it
// is not attempted: the input must be exactly the right width.
func parseAccountID(s string) (assets.AccountId, error) {
	var id assets.AccountId
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid account id %q: %w", s, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("account id %q: want %d bytes, got %d", s, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// parseAssetID decodes a hex-encoded asset identifier.
func parseAssetID(s string) (assets.AssetId, error) {
	var id assets.AssetId
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid asset id %q: %w", s, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("asset id %q: want %d bytes, got %d", s, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// formatAssetID renders an asset id the way every subcommand prints it back
// to the user, so the output of `create` can be pasted into later commands.
func formatAssetID(id assets.AssetId) string {
	return hex.EncodeToString(id[:])
}

// printEvents writes one line per emitted event when --verbose is set.
func printEvents(events []assets.Event) {
	if !verbose {
		return
	}
	for _, ev := range events {
		fmt.Printf("event: %s asset=%s fields=%v\n", ev.Kind, formatAssetID(ev.Asset), ev.Fields)
	}
}
