// SPDX-License-Identifier: EPL-2.0

package pcmsink_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ik5/pcmsink"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/formats/raw"
)

// Example converts 8 kHz stereo PCM to 16 kHz mono.
func Example() {
	in, _ := audio.NewFormat(8000, 16, 2)
	src, _ := raw.Decoder{Format: in}.Decode(bytes.NewReader(make([]byte, 800*in.BlockAlign())))

	f, _ := audio.NewFormat(16000, 16, 1)
	cfg, _ := audio.NewConfig(f)

	var out bytes.Buffer
	sink, err := raw.New(audio.NopCloser(&out), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer sink.Close()

	conformed, err := pcmsink.Conform(src, f)
	if err != nil {
		fmt.Println(err)
		return
	}

	n, err := pcmsink.Stream(context.Background(), conformed, sink)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Wrote %d bytes at %d Hz, %d channel\n", n, conformed.SampleRate(), conformed.Channels())
	// Output:
	// Wrote 3200 bytes at 16000 Hz, 1 channel
}

// Example_formats lists the built-in sinks and decoders.
func Example_formats() {
	fmt.Println("encoders:", pcmsink.Encoders().Names())
	fmt.Println("decoders:", pcmsink.Decoders().Names())
	// Output:
	// encoders: [aiff opus raw wav]
	// decoders: [aiff mp3 ogg raw wav]
}

// Example_formatMismatch shows that Stream refuses a source that was not
// conformed to the sink.
func Example_formatMismatch() {
	in, _ := audio.NewFormat(44100, 16, 2)
	src, _ := raw.Decoder{Format: in}.Decode(bytes.NewReader(nil))

	f, _ := audio.NewFormat(8000, 16, 1)
	cfg, _ := audio.NewConfig(f)
	sink, _ := raw.New(audio.NopCloser(&bytes.Buffer{}), cfg)
	defer sink.Close()

	_, err := pcmsink.Stream(context.Background(), src, sink)
	fmt.Println(errors.Is(err, pcmsink.ErrFormatMismatch))
	// Output:
	// true
}

// Example_encoderRegistry picks a sink by name.
func Example_encoderRegistry() {
	newSink, ok := pcmsink.Encoders().Get("wav")
	if !ok {
		fmt.Println("no wav encoder")
		return
	}

	var out bytes.Buffer
	sink, err := newSink(audio.NopCloser(&out), audio.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}

	pcm := make([]byte, 4*100)
	if err := sink.WriteSamples(pcm, 0, len(pcm)); err != nil {
		fmt.Println(err)
		return
	}
	if err := sink.Close(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s, %d bytes\n", out.Bytes()[:4], out.Len())
	// Output:
	// RIFF, 444 bytes
}
