// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ik5/pcmsink"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/formats/vorbis"
	"github.com/ik5/pcmsink/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded Vorbis: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_convertToWav converts an Ogg Vorbis file to 8 kHz
// mono WAV for telephony.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := vorbis.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}

	f, _ := audio.NewFormat(8000, 16, 1)
	cfg, _ := audio.NewConfig(f)

	sink, err := wav.New(out, cfg)
	if err != nil {
		log.Fatal(err)
	}

	conformed, err := pcmsink.Conform(src, f)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := pcmsink.Stream(context.Background(), conformed, sink); err != nil {
		log.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		log.Fatal(err)
	}
}

// ExampleDecoder_Decode_errorHandling shows the error for a stream that is not
// Ogg Vorbis.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	fmt.Println(err != nil)

	// Output:
	// true
}
