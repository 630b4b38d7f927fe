package model

import "strings"

// Config is an ON/OFF command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"1":    On,
	"TRUE": On,

	"OFF":   Off,
	"0":     Off,
	"FALSE": Off,
}

// NewConfig parses s, falling back to def for anything it does not know.
func NewConfig(s string, def Config) Config {
	if c, ok := configName[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c
	}
	return def
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
