// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every runtime setting for the hearsay server. Values come
// from flags first, then HEARSAY_* environment variables.
type Config struct {
	Bind        string
	Port        int
	RedisAddr   string
	RedisDB     int
	AssetBase   string
	ShareURL    string
	IdentityTTL time.Duration
	KeyPath     string
	PubKeyPath  string
	Verbose     bool
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.AssetBase != "" {
		u, err := url.Parse(c.AssetBase)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("asset-base must be an absolute URL: %q", c.AssetBase)
		}
	}
	if (c.KeyPath == "") != (c.PubKeyPath == "") {
		return errors.New("both --key and --pub-key must be provided together")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// NewCmd builds the root command. run receives the validated config.
func NewCmd(cfg *Config, run func(cmd *cobra.Command, cfg *Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HEARSAY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "hearsay",
		Short:         "Who said it? A celebrity quote guessing game server.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: HEARSAY_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: HEARSAY_PORT)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "redis address for score persistence; empty keeps scores in memory (env: HEARSAY_REDIS_ADDR)")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database number (env: HEARSAY_REDIS_DB)")
	fs.StringVar(&cfg.AssetBase, "asset-base", "https://assets.hearsay.games/", "base URL quote asset paths resolve against (env: HEARSAY_ASSET_BASE)")
	fs.StringVar(&cfg.ShareURL, "share-url", "", "URL encoded into the share QR code; empty derives it per request (env: HEARSAY_SHARE_URL)")
	fs.DurationVar(&cfg.IdentityTTL, "identity-ttl", time.Hour, "how long a resolved player identity is cached (env: HEARSAY_IDENTITY_TTL)")
	fs.StringVar(&cfg.KeyPath, "key", "", "path to ed25519 private key for session tokens (env: HEARSAY_KEY)")
	fs.StringVar(&cfg.PubKeyPath, "pub-key", "", "path to ed25519 public key for session tokens (env: HEARSAY_PUB_KEY)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "display additional output (env: HEARSAY_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SilenceUsage = true

	return cmd
}
