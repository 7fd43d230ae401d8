// SPDX-License-Identifier: EPL-2.0

// Package cli implements the pcmsink command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/internal/logging"
)

// EnvPrefix prefixes the environment variables read for every setting,
// e.g. PCMSINK_RATE or PCMSINK_LOG_LEVEL.
const EnvPrefix = "PCMSINK"

// Setting keys, shared by flags, environment and the config file.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
	keyRate     = "rate"
	keyBits     = "bits"
	keyChannels = "channels"
	keyFloat    = "float"
	keyEncoder  = "encoder"
	keyDecoder  = "decoder"
	keyBitrate  = "bitrate"
)

type app struct {
	v      *viper.Viper
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger  *slog.Logger
	logFile *os.File
}

// New returns the root command. Output goes to stdout, logs to stderr unless
// a log file is configured.
func New(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdin, stdout, stderr).command()
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.DiscardHandler),
	}
}

func (a *app) command() *cobra.Command {
	defaults := audio.DefaultConfig().Format()
	a.v.SetDefault(keyLogLevel, "info")
	a.v.SetDefault(keyLogFile, "")
	a.v.SetDefault(keyRate, defaults.SampleRate())
	a.v.SetDefault(keyBits, defaults.BitsPerSample())
	a.v.SetDefault(keyChannels, defaults.Channels())
	a.v.SetDefault(keyFloat, false)

	root := &cobra.Command{
		Use:           "pcmsink",
		Short:         "Write raw audio samples to encoding sinks",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (YAML, TOML or JSON)")
	pf.String(keyLogLevel, "info", "log level: "+strings.Join(logging.Levels, ", "))
	pf.String(keyLogFile, "", "write JSON logs to this file instead of stderr")
	pf.IntP(keyRate, "r", defaults.SampleRate(), "output sample rate in Hz")
	pf.IntP(keyBits, "b", defaults.BitsPerSample(), "output bits per sample")
	pf.IntP(keyChannels, "c", defaults.Channels(), "output channel count")
	pf.Bool(keyFloat, false, "write IEEE float samples (32 or 64 bits)")

	root.AddCommand(a.encodeCommand(), a.formatsCommand(), a.configCommand())

	// cobra skips the post-run hooks when RunE fails
	for _, c := range root.Commands() {
		c.RunE = a.withTeardown(c.RunE)
	}

	return root
}

// setup merges flags, PCMSINK_* variables and the config file, then builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	logger, logFile, err := logging.New(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFile), a.stderr)
	if err != nil {
		return err
	}
	a.logger, a.logFile = logger, logFile

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", "file", used)
	}

	return nil
}

func (a *app) withTeardown(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, a.teardown())
	}
}

func (a *app) teardown() error {
	if a.logFile == nil {
		return nil
	}

	err := a.logFile.Close()
	a.logFile = nil

	return err
}

// sinkConfig builds the sink configuration from the merged settings.
func (a *app) sinkConfig() (*audio.Config, error) {
	newFormat := audio.NewFormat
	if a.v.GetBool(keyFloat) {
		newFormat = audio.NewFloatFormat
	}

	f, err := newFormat(a.v.GetInt(keyRate), a.v.GetInt(keyBits), a.v.GetInt(keyChannels))
	if err != nil {
		return nil, err
	}

	return audio.NewConfig(f)
}
