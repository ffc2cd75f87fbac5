package cli

import (
	"github.com/NicholasBallard/calories-parse/internal/config"
	"github.com/NicholasBallard/calories-parse/internal/diary"
	"github.com/NicholasBallard/calories-parse/internal/files"
	"github.com/NicholasBallard/calories-parse/internal/logger"
)

// session is everything a command needs once flags and config are merged.
type session struct {
	settings config.Config
	diary    diary.Config
	manager  *files.Manager
	parser   *diary.Parser
	reader   *diary.Reader
}

// session loads config, applies flag overrides and compiles the parser.
func (o *options) session() (*session, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.input != "" {
		settings.Input = o.input
	}
	if o.output != "" {
		settings.Output = o.output
	}
	if o.xlsx != "" {
		settings.XLSX = o.xlsx
	}
	if o.sqlite != "" {
		settings.SQLite = o.sqlite
	}
	if o.noClipboard {
		settings.Clipboard = false
	}
	if o.strict {
		settings.Strict = true
	}

	cfg, err := settings.Diary()
	if err != nil {
		return nil, err
	}
	parser, err := diary.NewParser(cfg)
	if err != nil {
		return nil, err
	}
	manager, err := files.NewManager(o.basePath, settings.Input, settings.Output)
	if err != nil {
		return nil, err
	}

	logger.Debug("base %s, input %s, output %s, %d substitution rules, %s alignment",
		manager.BasePath(), manager.InputPath(), manager.OutputPath(), len(cfg.Rules), cfg.Alignment)

	return &session{
		settings: settings,
		diary:    cfg,
		manager:  manager,
		parser:   parser,
		reader:   diary.NewReader(manager, parser),
	}, nil
}
