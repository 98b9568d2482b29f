package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration in priority order: built-in defaults, an optional
// TOML file at path, then CARBONLEDGER_-prefixed environment variables. path
// may be empty, in which case only defaults and environment overrides apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("CARBONLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if cfg.StringLimit == 0 {
		return Config{}, fmt.Errorf("config: string_limit must be greater than zero")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("asset_deposit", d.AssetDeposit)
	v.SetDefault("asset_account_deposit", d.AssetAccountDeposit)
	v.SetDefault("metadata_deposit_base", d.MetadataDepositBase)
	v.SetDefault("metadata_deposit_per_byte", d.MetadataDepositPerByte)
	v.SetDefault("approval_deposit", d.ApprovalDeposit)
	v.SetDefault("string_limit", d.StringLimit)
	v.SetDefault("metadata_decimals", d.MetadataDecimals)
	v.SetDefault("native_min_balance", d.NativeMinBalance)
	v.SetDefault("journal_path", d.JournalPath)
	v.SetDefault("beacon_seed", d.BeaconSeed)
	v.SetDefault("id_cache_size", d.IDCacheSize)
}
