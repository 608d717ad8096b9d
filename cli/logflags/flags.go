// Package logflags defines the -log.* flags shared by the sortbench
// commands.
package logflags

import (
	"errors"
	"flag"

	"github.com/brimdata/sortbench/pkg/logger"
	"go.uber.org/zap"
)

type Flags struct {
	Config logger.Config
	name   string
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	f.Config.Level = zap.InfoLevel
	fs.Var(&f.Config.Level, "log.level", "logging level")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "path to send logs (values: stderr, /dev/null, path in file system)")
	f.Config.Mode = logger.FileModeAppend
	fs.Var(&f.Config.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
	fs.StringVar(&f.name, "log.name", "sortbench", "name attached to every log entry")
}

// Init rejects settings that would interleave log lines with samples
// written to stdout or that name a file mode without a file.
func (f *Flags) Init() error {
	switch f.Config.Path {
	case "stdout":
		return errors.New("-log.path stdout would mix logs with samples; use stderr or a file")
	case "stderr", "/dev/null":
		if f.Config.Mode == logger.FileModeRotate {
			return errors.New("-log.filemode rotate requires -log.path to name a file")
		}
	case "":
		return errors.New("-log.path must not be empty")
	}
	return nil
}

func (f *Flags) Open() (*zap.Logger, error) {
	l, err := logger.New(f.Config)
	if err != nil {
		return nil, err
	}
	if f.name != "" {
		l = l.Named(f.name)
	}
	return l, nil
}
