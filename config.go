package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Seednode/feudbox/games/feud"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind            string
	corsOrigins     []string
	fmFallback      int
	fmPlayer1Time   time.Duration
	fmPlayer2Time   time.Duration
	fmPoints        []int
	fmSlots         int
	fmWinThreshold  int
	operatorTimeout time.Duration
	port            int
	prefix          string
	profile         bool
	questions       string
	sessionTimeout  time.Duration
	tlsCert         string
	tlsKey          string
	verbose         bool
	version         bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if strings.TrimSpace(c.questions) == "" {
		return errors.New("--questions must point to a round file or URL")
	}
	if c.sessionTimeout < 0 || c.operatorTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if err := c.policy().Validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func (c *Config) policy() feud.Policy {
	table := make([]int, len(c.fmPoints))
	copy(table, c.fmPoints)

	return feud.Policy{
		Slots:        c.fmSlots,
		Table:        table,
		Fallback:     c.fmFallback,
		WinThreshold: c.fmWinThreshold,
		Player1Time:  c.fmPlayer1Time,
		Player2Time:  c.fmPlayer2Time,
	}
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FEUDBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "feudbox",
		Short:         "A Family Feud style quiz board, run from the browser by a single operator.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			if cfg.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: FEUDBOX_BIND)")
	fs.StringSliceVar(&cfg.corsOrigins, "cors-origins", nil, "origins allowed to call the board from other sites (env: FEUDBOX_CORS_ORIGINS)")
	fs.IntVar(&cfg.fmFallback, "fm-fallback", feud.DefaultFallbackPoints, "fast money points for a filled slot past the end of --fm-points (env: FEUDBOX_FM_FALLBACK)")
	fs.DurationVar(&cfg.fmPlayer1Time, "fm-player1-time", feud.DefaultPlayer1Time, "fast money countdown for player 1 (env: FEUDBOX_FM_PLAYER1_TIME)")
	fs.DurationVar(&cfg.fmPlayer2Time, "fm-player2-time", feud.DefaultPlayer2Time, "fast money countdown for player 2 (env: FEUDBOX_FM_PLAYER2_TIME)")
	fs.IntSliceVar(&cfg.fmPoints, "fm-points", append([]int(nil), feud.DefaultPointsTable...), "fast money points per filled slot, in slot order (env: FEUDBOX_FM_POINTS)")
	fs.IntVar(&cfg.fmSlots, "fm-slots", len(feud.DefaultPointsTable), "fast money answers per player (env: FEUDBOX_FM_SLOTS)")
	fs.IntVar(&cfg.fmWinThreshold, "fm-win-threshold", feud.DefaultWinThreshold, "combined fast money total needed to win (env: FEUDBOX_FM_WIN_THRESHOLD)")
	fs.DurationVar(&cfg.operatorTimeout, "operator-timeout", 2*time.Minute, "time before a disconnected operator's seat can be taken (env: FEUDBOX_OPERATOR_TIMEOUT)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: FEUDBOX_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: FEUDBOX_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: FEUDBOX_PROFILE)")
	fs.StringVarP(&cfg.questions, "questions", "q", "questions.json", "round file (.json, .yaml) or http(s) URL (env: FEUDBOX_QUESTIONS)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: FEUDBOX_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: FEUDBOX_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: FEUDBOX_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: FEUDBOX_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: FEUDBOX_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("feudbox v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
