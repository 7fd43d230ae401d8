// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSampleRate    = 44100
	DefaultBitsPerSample = 16
	DefaultChannels      = 2
)

// persistedSize is the binary size of Persisted: three little-endian int32.
const persistedSize = 12

// Persisted is the stored form of a Config: exactly the three primary
// fields, in this order. Derived fields and the format tag are not stored;
// Restore always yields a PCM format.
type Persisted struct {
	SampleRate    int32 `yaml:"sample_rate" json:"sample_rate"`
	BitsPerSample int32 `yaml:"bits_per_sample" json:"bits_per_sample"`
	Channels      int32 `yaml:"channels" json:"channels"`
}

// Config carries the sample format of a sink. A sink owns its Config
// exclusively and locks it on the first write; after that SetFormat fails.
type Config struct {
	format Format
	locked bool
}

// NewConfig copies the primary fields of f into a fresh Format.
func NewConfig(f Format) (*Config, error) {
	copied, err := NewTaggedFormat(f.Tag(), f.SampleRate(), f.BitsPerSample(), f.Channels())
	if err != nil {
		return nil, err
	}

	return &Config{format: copied}, nil
}

// DefaultConfig is CD quality: 44.1 kHz, 16-bit, stereo PCM.
func DefaultConfig() *Config {
	f, err := NewFormat(DefaultSampleRate, DefaultBitsPerSample, DefaultChannels)
	if err != nil {
		panic(err)
	}

	return &Config{format: f}
}

// Restore rebuilds a Config from its persisted triple.
func Restore(p Persisted) (*Config, error) {
	f, err := NewFormat(int(p.SampleRate), int(p.BitsPerSample), int(p.Channels))
	if err != nil {
		return nil, err
	}

	return &Config{format: f}, nil
}

func (c *Config) Format() Format { return c.format }

// SetFormat replaces the format. It fails with ErrInvalidState once the
// owning sink has started writing.
func (c *Config) SetFormat(f Format) error {
	if c.locked {
		return fmt.Errorf("%w: format is fixed once writing has begun", ErrInvalidState)
	}

	copied, err := NewTaggedFormat(f.Tag(), f.SampleRate(), f.BitsPerSample(), f.Channels())
	if err != nil {
		return err
	}

	c.format = copied
	return nil
}

// Locked reports whether the format can no longer change.
func (c *Config) Locked() bool { return c.locked }

func (c *Config) lock() { c.locked = true }

func (c *Config) unlock() { c.locked = false }

// Clone returns an unlocked copy.
func (c *Config) Clone() *Config {
	return &Config{format: c.format}
}

// Persist returns the stored form of the configuration.
func (c *Config) Persist() Persisted {
	return Persisted{
		SampleRate:    int32(c.format.SampleRate()),
		BitsPerSample: int32(c.format.BitsPerSample()),
		Channels:      int32(c.format.Channels()),
	}
}

func (c *Config) String() string {
	return c.format.String()
}

func (c *Config) MarshalYAML() (any, error) {
	return c.Persist(), nil
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var p Persisted
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("%w", err)
	}

	restored, err := Restore(p)
	if err != nil {
		return err
	}

	*c = *restored
	return nil
}

func (c *Config) MarshalBinary() ([]byte, error) {
	p := c.Persist()
	b := make([]byte, persistedSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(p.SampleRate))
	binary.LittleEndian.PutUint32(b[4:8], uint32(p.BitsPerSample))
	binary.LittleEndian.PutUint32(b[8:12], uint32(p.Channels))

	return b, nil
}

func (c *Config) UnmarshalBinary(data []byte) error {
	if len(data) != persistedSize {
		return fmt.Errorf("%w: persisted config must be %d bytes, got %d",
			ErrInvalidFormat, persistedSize, len(data))
	}

	restored, err := Restore(Persisted{
		SampleRate:    int32(binary.LittleEndian.Uint32(data[0:4])),
		BitsPerSample: int32(binary.LittleEndian.Uint32(data[4:8])),
		Channels:      int32(binary.LittleEndian.Uint32(data[8:12])),
	})
	if err != nil {
		return err
	}

	*c = *restored
	return nil
}
