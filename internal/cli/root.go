package cli

import (
	"fmt"
	"io"
	"strings"

	"babynames/internal/chart"
	"babynames/internal/engine"
	"babynames/internal/storage"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BABYNAMES"
	logHeader = "${time_rfc3339} ${level}"
)

// Config holds every setting of the command tree. Values come from flags,
// BABYNAMES_* environment variables and an optional TOML file, in that order
// of priority.
type Config struct {
	Data     string
	DB       string
	SkipRows int
	Sheet    string
	Verbose  bool

	// menu
	History     string
	ChartHeight int

	// serve
	Bind      string
	RateLimit float64
}

func NewConfig() *Config {
	return &Config{
		Data:        "baby-names-frequency-80-84.xlsx",
		DB:          storage.DefaultPath,
		SkipRows:    engine.DefaultSkipRows,
		ChartHeight: chart.DefaultHeight,
		Bind:        ":8080",
		RateLimit:   20,
	}
}

func (c *Config) loadOptions() engine.LoadOptions {
	return engine.LoadOptions{SkipRows: c.SkipRows, Sheet: c.Sheet}
}

// NewRootCommand builds the babynames command tree. Running it without a
// subcommand starts the interactive menu.
func NewRootCommand(stdin io.ReadCloser, stdout, stderr io.Writer) *cobra.Command {
	cfg := NewConfig()

	rc := &cobra.Command{
		Use:   "babynames",
		Short: "Explore Alberta baby name frequencies.",
		Long: `Explore Alberta baby name frequencies.

Load the published spreadsheet (rank, name, frequency, gender, year), then
search names exactly or with a * wildcard, list the top ten names of a year
and chart how a name trended. Processed data can be saved to and reopened
from a local database file.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setAllConfig(viper.New(), cmd.Flags(), configKeys(cmd.Root())); err != nil {
				return err
			}
			setupLogger(stderr, cfg.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), cfg, stdin, stdout, stderr)
		},
	}

	flags := rc.PersistentFlags()
	flags.StringP("config", "c", "", "Configuration file to read from (TOML).")
	flags.StringVar(&cfg.Data, "data", cfg.Data, "Spreadsheet (.xlsx or .csv) to load.")
	flags.StringVar(&cfg.DB, "db", cfg.DB, "Processed data file.")
	flags.IntVar(&cfg.SkipRows, "skip-rows", cfg.SkipRows, "Rows above the data in the spreadsheet.")
	flags.StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "Worksheet to read (default: the active one).")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log load and save details.")

	rc.Flags().StringVar(&cfg.History, "history", cfg.History, "Path of the prompt history file.")
	rc.Flags().IntVar(&cfg.ChartHeight, "chart-height", cfg.ChartHeight, "Height of the trend chart in lines.")

	rc.AddCommand(newServeCommand(cfg))
	rc.AddCommand(newConvertCommand(cfg, stdout))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

func setupLogger(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetHeader(logHeader)
	if verbose {
		log.SetLevel(log.DEBUG)
	} else {
		log.SetLevel(log.WARN)
	}
}

// configKeys returns the flag names of every command under root. One config
// file is shared by all commands, so a key is valid if any command uses it.
func configKeys(root *cobra.Command) map[string]bool {
	keys := make(map[string]bool)
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				keys[f.Name] = true
			})
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	return keys
}

// setAllConfig fills every flag in flags that was not set on the command
// line from the environment or the config file named by --config. Keys in
// the file must be in validTags.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet, validTags map[string]bool) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}
		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		flagErr = f.Value.Set(v.GetString(f.Name))
	})
	return flagErr
}
