// Command cpplex runs the line-splice / comment-strip / tokenize
// pipeline over a C source file (or stdin) and prints its token stream,
// mirroring the CLI shape of the teacher's `mysqldef`/`psqldef` binaries:
// go-flags option parsing, a `--config` YAML file, and a token-cache
// connection flag pair in place of the teacher's database connection
// flags.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/k0kubun/cpplex"
	"github.com/k0kubun/cpplex/internal/config"
	"github.com/k0kubun/cpplex/internal/corpus"
	"github.com/k0kubun/cpplex/internal/corpus/mssql"
	"github.com/k0kubun/cpplex/internal/corpus/mysql"
	"github.com/k0kubun/cpplex/internal/corpus/postgres"
	"github.com/k0kubun/cpplex/internal/corpus/sqlite"
	"github.com/k0kubun/cpplex/internal/token"
	"github.com/k0kubun/cpplex/util"
)

var version string

type cliOptions struct {
	File        string `long:"file" description:"Read source from the file, rather than stdin" value-name:"c_file" default:"-"`
	Config      string `long:"config" description:"YAML file to specify: extensions, strict, cache"`
	CacheDriver string `long:"cache-driver" description:"Token-cache backend: sqlite, mysql, postgres, mssql" value-name:"driver"`
	CacheDSN    string `long:"cache-dsn" description:"Token-cache connection string" value-name:"dsn"`
	Strict      bool   `long:"strict" description:"Exit with status 2 if any token.Other is produced"`
	Debug       bool   `long:"debug" description:"Pretty-print the materialized buffer and token stream"`
	Help        bool   `long:"help" description:"Show this help"`
	Version     bool   `long:"version" description:"Show this version"`
}

func parseOptions(args []string) (cliOptions, []string) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] [c_file]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	return opts, rest
}

func main() {
	util.InitSlog()

	opts, rest := parseOptions(os.Args[1:])
	file := opts.File
	if len(rest) > 0 {
		file = rest[0]
	}

	cfg, err := config.ParseFile(opts.Config)
	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}
	if opts.Strict {
		cfg.Strict = true
	}
	if opts.CacheDriver != "" {
		cfg.Cache.Driver = opts.CacheDriver
	}
	if opts.CacheDSN != "" {
		cfg.Cache.DSN = opts.CacheDSN
	}

	if unrecognizedExtension(cfg, file) {
		slog.Warn("file extension not in configured extensions, preprocessing anyway",
			"file", file, "extensions", cfg.Extensions)
	}

	src, err := readSource(file)
	if err != nil {
		slog.Error("failed to read source", "file", file, "error", err)
		os.Exit(1)
	}

	store, err := openCache(cfg.Cache)
	if err != nil {
		slog.Error("failed to open token cache", "error", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	result, hadOther, err := run(src, store)
	if err != nil {
		slog.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	printTokens(result.Tokens, isTTY)

	if opts.Debug {
		pp.Println(result)
	}

	if cfg.Strict && hadOther {
		os.Exit(2)
	}
}

func run(src []byte, store corpus.Store) (*cpp.Result, bool, error) {
	hash := corpus.Hash(src)
	if store != nil {
		if entry, ok, err := store.Get(hash); err == nil && ok {
			slog.Debug("token cache hit", "hash", hash)
			return resultFromEntry(entry), entry.FirstOther != "", nil
		}
	}

	result, err := cpp.Preprocess(src)
	if err != nil {
		return nil, false, err
	}

	firstOther := ""
	for _, tok := range result.Tokens {
		if tok.Kind == token.Other {
			firstOther = string(tok.Text)
			break
		}
	}

	if store != nil {
		entry := corpus.Entry{
			Materialized: result.Materialized,
			TokenCount:   len(result.Tokens),
			FirstOther:   firstOther,
		}
		if err := store.Put(hash, entry); err != nil {
			slog.Warn("failed to write token cache entry", "error", err)
		}
	}

	return result, firstOther != "", nil
}

func resultFromEntry(entry corpus.Entry) *cpp.Result {
	// The cache only remembers the materialized buffer and a summary, so
	// the token stream is rebuilt by running cpp.Preprocess over that
	// already spliced and comment-stripped buffer rather than over the
	// original source.
	result, _ := cpp.Preprocess(entry.Materialized)
	return result
}

func openCache(cfg config.CacheConfig) (corpus.Store, error) {
	switch cfg.Driver {
	case "":
		return nil, nil
	case "sqlite":
		return sqlite.Open(cfg.DSN)
	case "mysql":
		return mysql.Open(cfg.DSN)
	case "postgres":
		return postgres.Open(cfg.DSN)
	case "mssql":
		return mssql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// unrecognizedExtension reports whether file names a real path (not
// stdin) whose extension isn't in cfg's configured Extensions list.
func unrecognizedExtension(cfg config.Config, file string) bool {
	if file == "-" || file == "" {
		return false
	}
	return !cfg.HandlesExtension(filepath.Ext(file))
}

func readSource(file string) ([]byte, error) {
	if file == "-" || file == "" {
		return io.ReadAll(bufio.NewReader(os.Stdin))
	}
	return os.ReadFile(file)
}

func printTokens(tokens []token.Token, color bool) {
	lines := util.TransformSlice(tokens, func(tok token.Token) string {
		line := tok.String()
		if color && tok.Kind == token.Other {
			line = "\x1b[31m" + line + "\x1b[0m"
		}
		return line
	})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
