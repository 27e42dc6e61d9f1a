package chip

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saibatizoku/go-ezo/protocol"
)

// Profile describes one EZO chip family: its factory-default I2C address and
// the reply buffer size its longest response needs.
type Profile struct {
	// Name is the chip family name, e.g. "rtd"
	Name string `yaml:"name"`

	// DefaultAddress is the factory-default 7-bit I2C address
	DefaultAddress uint16 `yaml:"default_address"`

	// ReplySize is the reply buffer size in bytes; 0 selects
	// protocol.DefaultReplySize
	ReplySize int `yaml:"reply_size"`
}

// builtin holds the profiles for the stock Atlas Scientific chips, keyed by
// lowercase family name. Addresses per the EZO datasheets.
var builtin = map[string]Profile{
	"do":  {Name: "do", DefaultAddress: 0x61, ReplySize: protocol.DefaultReplySize},
	"orp": {Name: "orp", DefaultAddress: 0x62, ReplySize: protocol.DefaultReplySize},
	"ph":  {Name: "ph", DefaultAddress: 0x63, ReplySize: protocol.DefaultReplySize},
	"ec":  {Name: "ec", DefaultAddress: 0x64, ReplySize: protocol.DefaultReplySize},
	"rtd": {Name: "rtd", DefaultAddress: 0x66, ReplySize: protocol.DefaultReplySize},
}

// Builtin returns the stock profile for the named chip family.
//
// Example:
//
//	p, ok := chip.Builtin("rtd")
func Builtin(name string) (Profile, bool) {
	p, ok := builtin[name]
	return p, ok
}

// Load reads a Profile from a YAML file.
//
// Example file:
//
//	name: rtd
//	default_address: 0x66
//	reply_size: 42
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := LoadReader(f)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// LoadReader reads a Profile from YAML. Missing reply_size falls back to
// protocol.DefaultReplySize.
func LoadReader(r io.Reader) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}

	if p.ReplySize == 0 {
		p.ReplySize = protocol.DefaultReplySize
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile for values the engine cannot work with.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile is missing a name")
	}
	if p.DefaultAddress == 0 || p.DefaultAddress > 0x7F {
		return fmt.Errorf("profile %s: default address %#x is not a 7-bit I2C address", p.Name, p.DefaultAddress)
	}
	if p.ReplySize < 2 {
		return fmt.Errorf("profile %s: reply size %d cannot hold a status byte and terminator", p.Name, p.ReplySize)
	}
	return nil
}
