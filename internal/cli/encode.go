// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/pcmsink"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/formats/opus"
	"github.com/ik5/pcmsink/formats/raw"
)

// stdio names standard input or output in place of a path.
const stdio = "-"

var (
	// ErrUnknownEncoder is returned for an encoder name with no sink.
	ErrUnknownEncoder = errors.New("unknown encoder")

	// ErrUnknownDecoder is returned for a decoder name with no decoder.
	ErrUnknownDecoder = errors.New("unknown decoder")
)

// extensions maps file extensions to registry names where they differ.
var extensions = map[string]string{
	"aif":  "aiff",
	"aifc": "aiff",
	"oga":  "ogg",
	"pcm":  "raw",
	"wave": "wav",
}

func (a *app) encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input|-> <output|->",
		Short: "Decode an audio file and write it through a sink",
		Long: `Decode the input, convert it to the configured rate and channel count,
and stream it into the selected sink. Encoder and decoder default to the
file extensions. Raw input is read in the output format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.encode(cmd, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringP(keyEncoder, "e", "", "sink to write: "+strings.Join(pcmsink.Encoders().Names(), ", "))
	f.StringP(keyDecoder, "d", "", "decoder for the input: "+strings.Join(pcmsink.Decoders().Names(), ", "))
	f.Int(keyBitrate, 0, "opus bitrate in bits per second, 0 for the encoder default")

	return cmd
}

func (a *app) encode(cmd *cobra.Command, input, output string) error {
	cfg, err := a.sinkConfig()
	if err != nil {
		return err
	}

	decName := resolveName(a.v.GetString(keyDecoder), input)
	encName := resolveName(a.v.GetString(keyEncoder), output)

	dec, ok := pcmsink.Decoders().Get(decName)
	if !ok {
		return fmt.Errorf("%w: %q, use --decoder", ErrUnknownDecoder, decName)
	}
	if decName == "raw" {
		dec = raw.Decoder{Format: cfg.Format()}
	}
	newSink, ok := pcmsink.Encoders().Get(encName)
	if !ok {
		return fmt.Errorf("%w: %q, use --encoder", ErrUnknownEncoder, encName)
	}
	if bitrate := a.v.GetInt(keyBitrate); encName == "opus" && bitrate > 0 {
		newSink = func(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error) {
			return audio.NewSink(w, cfg, opus.NewEncoder(bitrate), opts...)
		}
	}

	in, err := a.openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s as %s: %w", input, decName, err)
	}
	defer src.Close()

	conformed, err := pcmsink.Conform(src, cfg.Format())
	if err != nil {
		return err
	}

	out, err := a.openOutput(output)
	if err != nil {
		return err
	}

	sink, err := newSink(out, cfg, audio.WithLogger(a.logger))
	if err != nil {
		_ = out.Close()
		return err
	}

	a.logger.Info("encoding",
		"input", input,
		"decoder", decName,
		"source_rate", src.SampleRate(),
		"source_channels", src.Channels(),
		"output", output,
		"encoder", encName,
		"format", cfg.Format(),
	)

	start := time.Now()
	n, streamErr := pcmsink.Stream(cmd.Context(), conformed, sink)
	if err := errors.Join(streamErr, sink.Close()); err != nil {
		return err
	}

	a.logger.Info("encoded",
		"sink", sink.ID(),
		"bytes", n,
		"duration", cfg.Format().Duration(n),
		"elapsed", time.Since(start),
	)

	return nil
}

// resolveName returns the explicit name, or the registry name for the
// extension of path.
func resolveName(explicit, path string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if name, ok := extensions[ext]; ok {
		return name
	}

	return ext
}

func (a *app) openInput(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

func (a *app) openOutput(path string) (io.WriteCloser, error) {
	if path == stdio {
		return audio.NopCloser(a.stdout), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return f, nil
}
