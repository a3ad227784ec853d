// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const rootName = "root"

var root = rootLogger{}

type rootLogger struct {
	done uint32
	m    sync.Mutex
	l    *Logger
}

func (rl *rootLogger) verify() {
	if atomic.LoadUint32(&rl.done) == 0 {
		rl.setDefault()
	}
}

func (rl *rootLogger) setDefault() {
	rl.m.Lock()
	defer rl.m.Unlock()
	if rl.done == 0 {
		defer atomic.StoreUint32(&rl.done, 1)
		var err error
		rl.l, err = newLogger(Logging{
			Env:   "prod",
			Level: "warn",
		}, os.Stderr)
		if err != nil {
			panic(err)
		}
	}
}

func (rl *rootLogger) set(cfg Logging, w io.Writer) error {
	rl.m.Lock()
	defer rl.m.Unlock()
	l, err := newLogger(cfg, w)
	if err != nil {
		return err
	}
	rl.l = l
	atomic.StoreUint32(&rl.done, 1)
	return nil
}

// GetLogger returns the root logger, or a logger for the module named by
// joining scope with dots.
func GetLogger(scope ...string) *Logger {
	root.verify()
	root.m.Lock()
	l := root.l
	root.m.Unlock()
	if len(scope) < 1 {
		return l
	}
	return l.Named(scope...)
}

// Init replaces the root logger. Output goes to stderr.
func Init(cfg Logging) error {
	return root.set(cfg, os.Stderr)
}

// New builds a standalone logger writing to w. It does not touch the root.
func New(cfg Logging, w io.Writer) (*Logger, error) {
	return newLogger(cfg, w)
}

func newLogger(cfg Logging, out io.Writer) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := out
	if cfg.Env == "dev" {
		cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		cw.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		cw.FormatFieldName = func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		}
		w = io.Writer(cw)
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &Logger{module: rootName, base: &l, Logger: &l}, nil
}
