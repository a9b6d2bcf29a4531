package config

import (
	"io"
	"strings"

	"github.com/Abraxas-365/mailbatch/pkg/logx"
)

// LoggerConfig builds the logx configuration described by c, writing to w.
func (c LogConfig) LoggerConfig(w io.Writer) *logx.Config {
	lc := logx.DefaultConfig()
	lc.Level = logx.ParseLevel(c.Level)
	lc.Format = logx.ParseFormat(c.Format)
	lc.Output = w

	switch strings.ToLower(c.Color) {
	case "always":
		lc.EnableColors = true
	case "never":
		lc.EnableColors = false
	}
	return lc
}
