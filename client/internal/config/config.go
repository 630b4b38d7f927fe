package config

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultConfig       = "BoardSize: 5\n"
	defaultDataBaseName = "dots_and_boxes"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Player struct {
	Name   string `json:",optional"`
	Marker string `json:",optional"`
	Color  string `json:",optional"`
}

type Config struct {
	BoardSize int          `json:",default=5"`
	Player1   Player       `json:",optional"`
	Player2   Player       `json:",optional"`
	Color     string       `json:",default=ON"`
	Progress  string       `json:",default=ON"`
	Log       logx.LogConf `json:",optional"`
	Journal   struct {
		Mongo struct {
			Url          string `json:",optional"`
			DataBaseName string `json:",default=dots_and_boxes"`
		} `json:",optional"`
		Redis struct {
			Host string `json:",optional"`
			Pass string `json:",optional"`
		} `json:",optional"`
		PushInterval time.Duration `json:",default=1s"`
	} `json:",optional"`
	Pprof string `json:",optional"`
}

// Load reads the yaml file at path, or the built in defaults when path is
// empty, and normalizes the result.
func Load(path string) (c Config, err error) {
	if path == "" {
		err = conf.LoadFromYamlBytes([]byte(defaultConfig), &c)
	} else {
		err = conf.Load(path, &c)
	}
	if err != nil {
		return
	}

	c.Normalize()
	return
}

// Normalize clamps the board size into the playable range and fills in
// missing player identities.
func (c *Config) Normalize() {
	c.BoardSize = ClampBoardSize(c.BoardSize)

	defaults := chess.DefaultIdentities()
	normalizePlayer(&c.Player1, defaults[chess.Player1])
	normalizePlayer(&c.Player2, defaults[chess.Player2])

	if c.Journal.PushInterval <= 0 {
		c.Journal.PushInterval = time.Second
	}
	if c.Journal.Mongo.DataBaseName == "" {
		c.Journal.Mongo.DataBaseName = defaultDataBaseName
	}
}

func ClampBoardSize(n int) int {
	return max(chess.MinBoardSize, min(n, chess.MaxBoardSize))
}

func normalizePlayer(p *Player, def chess.Identity) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = def.Name
	}

	p.Marker = Marker(p.Marker)

	if !hexColor.MatchString(p.Color) {
		p.Color = def.Color
	}
}

// Marker keeps the first rune of s, upper cased.
func Marker(s string) string {
	for _, r := range strings.TrimSpace(s) {
		return string(unicode.ToUpper(r))
	}
	return ""
}

func (c *Config) Identities() [2]chess.Identity {
	return [...]chess.Identity{
		{Name: c.Player1.Name, Marker: c.Player1.Marker, Color: c.Player1.Color},
		{Name: c.Player2.Name, Marker: c.Player2.Marker, Color: c.Player2.Color},
	}
}
