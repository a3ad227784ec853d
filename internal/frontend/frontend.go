// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package frontend turns query text and query files into request trees. It
// ties the lexer and the parser to a file system, a parse cache, metrics, and
// logging.
package frontend

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"

	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/fs"
	"gopkg.microglot.org/wcps.go/internal/idl"
	"gopkg.microglot.org/wcps.go/internal/iter"
	"gopkg.microglot.org/wcps.go/internal/lexer"
	"gopkg.microglot.org/wcps.go/internal/logger"
	"gopkg.microglot.org/wcps.go/internal/parser"
	"gopkg.microglot.org/wcps.go/internal/target"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// DefaultCacheSize is the number of parsed queries kept when WithCacheSize is
// not given.
const DefaultCacheSize = 128

type Option func(f *Frontend) error

func WithFS(fs idl.FileSystem) Option {
	return func(f *Frontend) error {
		f.fs = fs
		return nil
	}
}

func WithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(f *Frontend) error {
		f.lookupEnv = lookupEnv
		return nil
	}
}

// WithReporter adds a sink that receives every exception reported by
// ParseFiles and Sources calls, in addition to the exceptions each call
// returns.
func WithReporter(reporter exc.Reporter) Option {
	return func(f *Frontend) error {
		f.sink = reporter
		return nil
	}
}

// WithNonFatal lists exception codes that do not stop a ParseFiles or Sources
// call from opening the remaining targets.
func WithNonFatal(codes ...string) Option {
	return func(f *Frontend) error {
		f.nonFatal = append(f.nonFatal, codes...)
		return nil
	}
}

func WithMaxDepth(depth int) Option {
	return func(f *Frontend) error {
		if depth < 1 {
			return exc.New(exc.Location{}, exc.CodeUnknownFatal, "max depth must be positive")
		}
		f.maxDepth = depth
		return nil
	}
}

// WithCacheSize sets how many parsed queries are kept. Zero disables the
// cache.
func WithCacheSize(size int) Option {
	return func(f *Frontend) error {
		if size < 0 {
			return exc.New(exc.Location{}, exc.CodeUnknownFatal, "cache size must not be negative")
		}
		f.cacheSize = size
		return nil
	}
}

// WithRegisterer selects where the frontend metrics are registered. A private
// registry is used by default.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(f *Frontend) error {
		f.registerer = registerer
		return nil
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(f *Frontend) error {
		f.log = l
		return nil
	}
}

func WithMaxConcurrency(n int) Option {
	return func(f *Frontend) error {
		f.maxConcurrency = n
		return nil
	}
}

func New(opts ...Option) (*Frontend, error) {
	f := &Frontend{
		maxDepth:  parser.DefaultMaxDepth,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.lookupEnv == nil {
		f.lookupEnv = os.LookupEnv
	}
	if f.fs == nil {
		dfs, err := fs.NewDefaultFS(f.lookupEnv)
		if err != nil {
			return nil, err
		}
		f.fs = dfs
	}
	if f.maxConcurrency < 1 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		f.maxConcurrency = max
	}
	f.semaphore = newSemaphore(f.maxConcurrency)
	if f.log == nil {
		f.log = logger.GetLogger("frontend")
	}
	if f.registerer == nil {
		f.registerer = prometheus.NewRegistry()
	}
	f.metrics = newMetrics(f.registerer)
	if f.cacheSize > 0 {
		cache, err := lru.NewWithEvict(f.cacheSize, func(key interface{}, value interface{}) {
			f.metrics.cacheEvictTotal.Inc()
		})
		if err != nil {
			return nil, err
		}
		f.cache = cache
	}
	return f, nil
}

// Frontend parses queries. It is safe for concurrent use. Requests returned
// from the cache are shared between callers and must not be modified.
type Frontend struct {
	lookupEnv      func(string) (string, bool)
	fs             idl.FileSystem
	nonFatal       []string
	sink           exc.Reporter
	maxDepth       int
	cacheSize      int
	cache          *lru.Cache
	registerer     prometheus.Registerer
	metrics        *metrics
	log            *logger.Logger
	maxConcurrency int
	semaphore      *semaphore
}

// ParseQuery parses a single query. Successful results are cached by text.
func (self *Frontend) ParseQuery(ctx context.Context, text string) (*ast.Request, error) {
	if self.cache != nil {
		if cached, ok := self.cache.Get(text); ok {
			self.metrics.cacheHitsTotal.Inc()
			self.log.Debug().Msg("query served from cache")
			return cached.(*ast.Request), nil
		}
	}
	request, err := self.parseFile(ctx, fs.NewFileString("", text))
	if err != nil {
		return nil, err
	}
	if self.cache != nil {
		self.cache.Add(text, request)
	}
	return request, nil
}

// FileResult is the outcome of parsing one query file. Exactly one of Request
// and Err is set.
type FileResult struct {
	Path    string
	Request *ast.Request
	Err     error
}

// ParseFiles parses every query file named by targets. A target may be a file
// or a directory of query files. Failures of this call are returned together
// as a MultiException alongside the results. Results are ordered by path.
func (self *Frontend) ParseFiles(ctx context.Context, targets []string) ([]FileResult, error) {
	reporter := self.newReporter()
	defer self.forward(reporter)
	files, err := self.open(ctx, reporter, targets)
	if err != nil {
		return nil, err
	}

	loaded := &sync.Map{}
	results := make(chan FileResult, len(files))
	expectedResults := len(files)
	for _, file := range files {
		go func(file idl.File) {
			results <- self.parseOne(ctx, file, loaded)
		}(file)
	}

	out := make([]FileResult, 0, expectedResults)
	for x := 0; x < expectedResults; x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.Path == "" {
				continue
			}
			if result.Err != nil {
				_ = reporter.Report(asException(result.Path, result.Err))
			}
			out = append(out, result)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	if caught := reporter.Reported(); len(caught) > 0 {
		return out, MultiException(caught)
	}
	return out, nil
}

// newReporter returns the reporter for a single call.
func (self *Frontend) newReporter() exc.Reporter {
	return exc.NewReporter(self.nonFatal)
}

// forward copies the exceptions of one call to the WithReporter sink.
func (self *Frontend) forward(reporter exc.Reporter) {
	if self.sink == nil {
		return
	}
	for _, e := range reporter.Reported() {
		_ = self.sink.Report(e)
	}
}

// open resolves targets to query files. Targets that cannot be opened are
// reported and skipped unless the reporter treats them as fatal.
func (self *Frontend) open(ctx context.Context, reporter exc.Reporter, targets []string) ([]idl.File, error) {
	files := make([]idl.File, 0, len(targets))
	for _, t := range targets {
		uri, err := target.Normalize(t)
		if err != nil {
			if e := reporter.Report(asException(t, err)); e != nil {
				return nil, MultiException(reporter.Reported())
			}
			continue
		}
		in, err := self.fs.Open(ctx, uri)
		if err != nil {
			if e := reporter.Report(asException(uri, err)); e != nil {
				return nil, MultiException(reporter.Reported())
			}
			continue
		}
		for _, inf := range in {
			if inf.Kind(ctx) == idl.FileKindNone {
				continue
			}
			files = append(files, inf)
		}
	}
	return files, nil
}

// parseOne returns a result with no path when the file was already handled
// by another goroutine.
func (self *Frontend) parseOne(ctx context.Context, file idl.File, loaded *sync.Map) FileResult {
	path := file.Path(ctx)
	if _, dup := loaded.LoadOrStore(path, true); dup {
		return FileResult{}
	}
	if err := self.semaphore.Lock(ctx); err != nil {
		return FileResult{Path: path, Err: err}
	}
	defer self.semaphore.Unlock()
	request, err := self.parseFile(ctx, file)
	return FileResult{Path: path, Request: request, Err: err}
}

func (self *Frontend) parseFile(ctx context.Context, file idl.File) (*ast.Request, error) {
	path := file.Path(ctx)
	start := time.Now()
	request, err := self.lexAndParse(ctx, file)
	self.metrics.parseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		self.metrics.parsesTotal.WithLabelValues(outcomeFailed).Inc()
		self.log.Warn().Str("path", path).Str("code", exc.CodeOf(err)).Err(err).Msg("query rejected")
		return nil, err
	}
	self.metrics.parsesTotal.WithLabelValues(outcomeOK).Inc()
	self.log.Debug().Str("path", path).Dur("elapsed", time.Since(start)).Msg("query parsed")
	return request, nil
}

// lexAndParse prefers a lexical error over the parse error it causes, since
// the parser only sees the stream end early.
func (self *Frontend) lexAndParse(ctx context.Context, file idl.File) (*ast.Request, error) {
	path := file.Path(ctx)
	lexReporter := exc.NewReporter(nil)
	lf, err := lexer.New(lexReporter).Lex(ctx, file)
	if err != nil {
		return nil, err
	}
	tokens, err := lf.Tokens(ctx)
	if err != nil {
		return nil, err
	}
	request, err := parser.Parse(ctx, tokens, parser.WithMaxDepth(self.maxDepth))
	if lexed := lexReporter.Reported(); len(lexed) > 0 {
		return nil, lexed[0]
	}
	if err != nil {
		var perr *exc.ParseError
		if errors.As(err, &perr) {
			perr.Pos.URI = path
		}
		return nil, err
	}
	return request, nil
}

// Tokens lexes text and returns every token except space, ending with EOF.
func (self *Frontend) Tokens(ctx context.Context, text string) ([]token.Token, error) {
	lexReporter := exc.NewReporter(nil)
	tokens, err := lexer.New(lexReporter).LexString(ctx, "", text)
	if err != nil {
		return nil, err
	}
	out, err := iter.Collect(ctx, tokens)
	if lexed := lexReporter.Reported(); len(lexed) > 0 {
		return out, lexed[0]
	}
	return out, err
}

func asException(uri string, err error) exc.Exception {
	var e exc.Exception
	if errors.As(err, &e) {
		return e
	}
	return exc.WrapUnknown(exc.Location{URI: uri}, err)
}

// MultiException is every failure reported during a ParseFiles call.
type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
