package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/config"
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/edit/editors"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/storage"
	"github.com/Lotendan/wxWidgets/internal/styling"
)

// Flags for the `tui` command line command, for `go-flags` to parse command
// line args into.
type TuiCommand struct {
	Sheet         string `short:"s" long:"sheet" description:"the sheet file to edit (a built-in demo sheet is shown if omitted)" value-name:"<file>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command
// line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer = io.Discard
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file}
		} else {
			logWriter = file
		}
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set up we want the
	// info on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	// set up dir per option
	baseDirPath := os.Getenv("PGRID_HOME")
	if baseDirPath == "" {
		baseDirPath = os.Getenv("HOME") + "/.config/pgrid"
	} else {
		baseDirPath = strings.TrimRight(baseDirPath, "/")
	}

	// read config from file
	yamlData, err := os.ReadFile(baseDirPath + "/" + "config.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	edit.InitGlobalRegistry()
	defer edit.ShutdownGlobalRegistry()
	registry := edit.GlobalRegistry()
	editors.RegisterDefaults(registry)
	editors.RegisterAdditional(registry)

	var sheet storage.SheetProvider
	var properties []model.Property
	if command.Sheet != "" {
		handler := storage.NewYAMLSheetHandler(command.Sheet)
		properties, err = handler.Properties()
		if err != nil {
			stderrLogger.Fatal().Err(err).Msg("can't load sheet")
		}
		sheet = handler
	} else {
		properties = demoSheet(registry)
	}

	controller := NewController(configData, *stylesheet, registry, sheet, properties, stderrLogger, tuiLogger)

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
