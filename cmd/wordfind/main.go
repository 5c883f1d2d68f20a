// Copyright 2025 The WordFind Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the substring search server, CLI [DBG] and TUI.

WordFind loads a plain word list, one word per line, and answers "which
words contain this string?" by walking a trie built over every suffix of
every word. The trie is built once at startup; every query afterwards costs
time proportional to the query plus the number of matches.

# Usage

Start the IPC server with the dictionary from the config file:

	wordfind

Use a custom word list and enable debug mode:

	wordfind -dict /usr/share/dict/words -d

Search interactively:

	wordfind -t

Run in CLI mode for line based testing:

	wordfind -c -limit 10

# Configuration

Runtime configuration is read from a TOML file which is created with
defaults when it does not exist. Command line flags take precedence:

	[dict]
	path = "words.txt"
	encoding = "utf-8"
	max_words = 0

	[search]
	cache_size = 256
	max_query_len = 64
	show_limit = 1000

	[server]
	max_limit = 1000

	[cli]
	default_limit = 24

Building the trie needs memory quadratic in word length, so large word lists
can be bounded with max_words (or -words).

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Log output goes
to stderr so stdout only ever carries protocol frames.

	{"id": "req1", "q": "qui", "l": 20}
	{"id": "req1", "s": ["squire", "acquire"], "c": 2, "t": 12}

	{"id": "stats", "action": "info"}

Failed requests are answered with {"id", "e", "c"} where c is 400 for a
malformed request and 413 for a query above max_query_len.

# Command Line Flags

	-version
	    Show current version
	-dict string
	    Word list to load (default from config)
	-config string
	    Path to a custom config file
	-enc string
	    Word list encoding: utf-8, latin1, windows-1252
	-words int
	    Maximum number of words to load (0 for all)
	-d  Enable debug mode with detailed logging
	-c  Run the line based CLI instead of the server
	-t  Run the interactive TUI instead of the server
	-limit int
	    Number of results to print in CLI mode
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordfind/internal/cli"
	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/tui"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/index"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/bastiangx/wordfind/pkg/server"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordfind"
	gh      = "https://github.com/bastiangx/wordfind"
	logFile = "wordfind.log"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to build the index and start a front-end.
// main() does not implement logic for them and only manages the flow.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load, one word per line (default from config)")
	configPath := flag.String("config", "", "Path to a custom config file")
	encoding := flag.String("enc", "", "Word list encoding: utf-8, latin1, windows-1252 (default from config)")
	wordLimit := flag.Int("words", defaultConfig.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tuiMode := flag.Bool("t", false, "Run the interactive search screen")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to print in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// the TUI handles ctrl+c itself
	if !*tuiMode {
		sigHandler()
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *cliMode && *tuiMode {
		log.Fatal("-c and -t are mutually exclusive")
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(appConfig, *dictPath, *encoding, *wordLimit, *limit)
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration (%s): %v", config.GetActiveConfigPath(activeConfigPath), err)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Print("Either env is not set or system is not supported")
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	resolvedDict, err := pathResolver.GetDictPath(appConfig.Dict.Path)
	if err != nil {
		log.Fatalf("Failed to resolve dictionary:(%v)", err)
	}
	log.Debugf("Using dictionary at: %s", resolvedDict)

	words, err := dictionary.Load(resolvedDict,
		dictionary.WithEncoding(appConfig.Dict.Encoding),
		dictionary.WithMaxWords(appConfig.Dict.MaxWords))
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	engine := buildEngine(words, appConfig.Search.CacheSize)

	switch {
	// CLI would be mainly used for testing and dbg purposes.
	case *cliMode:
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxQueryLen", appConfig.Search.MaxQueryLen,
			"limit", appConfig.CLI.DefaultLimit)

		inputHandler := cli.NewInputHandler(engine, appConfig.Search.MaxQueryLen, appConfig.CLI.DefaultLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	case *tuiMode:
		logPath, err := pathResolver.GetConfigPath(logFile)
		if err != nil {
			log.Fatalf("Failed to determine log path: %v", err)
		}
		f, err := logger.RedirectToFile(logPath)
		if err != nil {
			log.Fatalf("Failed to redirect logs: %v", err)
		}
		defer f.Close()

		model := tui.NewModel(engine, appConfig.Search.ShowLimit, appConfig.Search.MaxQueryLen)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Errorf("TUI error: %v", err)
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}

	default:
		log.Debug("spawning IPC")
		srv := server.NewServer(engine, appConfig)
		showStartupInfo(resolvedDict, engine)

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}
}

// applyFlags overrides config values with the flags the user actually set.
func applyFlags(cfg *config.Config, dictPath, encoding string, wordLimit, limit int) {
	if dictPath != "" {
		cfg.Dict.Path = dictPath
	}
	if encoding != "" {
		cfg.Dict.Encoding = encoding
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "words":
			cfg.Dict.MaxWords = wordLimit
		case "limit":
			cfg.CLI.DefaultLimit = limit
		}
	})
}

// buildEngine builds the suffix trie once and wraps it in a cached engine.
func buildEngine(words []string, cacheSize int) *search.Engine {
	start := time.Now()
	idx := index.Build(words)
	elapsed := time.Since(start)

	if log.GetLevel() <= log.DebugLevel {
		stats := idx.Stats()
		log.Debug("Index built",
			"words", stats.Words,
			"chars", stats.Chars,
			"nodes", stats.Nodes,
			"postings", stats.Postings,
			"maxDepth", stats.MaxDepth,
			"took", elapsed)
	}
	return search.New(idx, search.WithCache(cacheSize))
}

// printVersion prints the styled version banner.
func printVersion() {
	banner := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordFind ] Finds every word containing what you type")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
// Everything goes to stderr, stdout belongs to the protocol.
func showStartupInfo(dictPath string, engine *search.Engine) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, " WordFind ")
	fmt.Fprintln(os.Stderr, "==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: ( %s )", dictPath)
	log.Infof("words: %s", utils.FormatWithCommas(engine.Index().Len()))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
