// Package config loads the deposit-tuning constants and bounded-string limit
// the engine needs to run, plus the demo CLI's store backing choice.
package config

import "github.com/dkuanyshbaev/carbonledger/internal/assets"

// Config is the full set of tunables the carbonledgerd CLI loads before
// constructing an Engine.
type Config struct {
	AssetDeposit           uint64 `mapstructure:"asset_deposit"`
	AssetAccountDeposit    uint64 `mapstructure:"asset_account_deposit"`
	MetadataDepositBase    uint64 `mapstructure:"metadata_deposit_base"`
	MetadataDepositPerByte uint64 `mapstructure:"metadata_deposit_per_byte"`
	ApprovalDeposit        uint64 `mapstructure:"approval_deposit"`
	StringLimit            uint32 `mapstructure:"string_limit"`
	MetadataDecimals       uint8  `mapstructure:"metadata_decimals"`

	// NativeMinBalance seeds the reference Currency adapter's existential
	// deposit; it has no effect when the CLI is wired to an external
	// currency implementation.
	NativeMinBalance uint64 `mapstructure:"native_min_balance"`

	// JournalPath, when non-empty, backs the store with the pebble-based
	// journal instead of the bare in-memory store.
	JournalPath string `mapstructure:"journal_path"`

	// BeaconSeed seeds the deterministic randomness beacon used to derive
	// asset ids. Two runs with the same seed and the same call sequence
	// produce the same ids.
	BeaconSeed uint64 `mapstructure:"beacon_seed"`

	// IDCacheSize bounds the Identifier & Nonce service's in-memory
	// collision-check cache.
	IDCacheSize int `mapstructure:"id_cache_size"`
}

// EngineConfig narrows Config down to the deposit/limit fields assets.Config
// holds.
func (c Config) EngineConfig() assets.Config {
	return assets.Config{
		AssetDeposit:           c.AssetDeposit,
		AssetAccountDeposit:    c.AssetAccountDeposit,
		MetadataDepositBase:    c.MetadataDepositBase,
		MetadataDepositPerByte: c.MetadataDepositPerByte,
		ApprovalDeposit:        c.ApprovalDeposit,
		StringLimit:            c.StringLimit,
		MetadataDecimals:       c.MetadataDecimals,
	}
}

// Default returns small, easy-to-read deposit constants suitable for the
// demo CLI and for tests.
func Default() Config {
	return Config{
		AssetDeposit:           1,
		AssetAccountDeposit:    10,
		MetadataDepositBase:    1,
		MetadataDepositPerByte: 1,
		ApprovalDeposit:        1,
		StringLimit:            50,
		MetadataDecimals:       9,
		NativeMinBalance:       1,
		BeaconSeed:             1,
		IDCacheSize:            1024,
	}
}
