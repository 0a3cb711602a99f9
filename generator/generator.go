package generator

import (
	"github.com/go-faster/errors"
	"github.com/yaroher/protoc-gen-go-leo/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type Generator struct {
	Settings *PluginSettings
	Plugin   *protogen.Plugin

	log *zap.Logger
}

type Option func(*Generator) error

// WithSettings replaces the settings parsed from the plugin parameter.
func WithSettings(settings *PluginSettings) Option {
	return func(g *Generator) error {
		if settings == nil {
			return errors.New("nil settings")
		}
		g.Settings = settings
		return nil
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) error {
		g.log = log
		return nil
	}
}

func NewGenerator(p *protogen.Plugin, opts ...Option) (*Generator, error) {
	settings, err := NewPluginSettingsFromPlugin(p)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		Settings: settings,
		Plugin:   p,
		log:      logger.Logger,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate writes a .pb.leo.go file for every file protoc asked for.
func (g *Generator) Generate() error {
	l := g.log.Named("Generate")
	for _, file := range g.Plugin.Files {
		if !file.Generate {
			continue
		}
		l.Debug("file", zap.String("path", file.Desc.Path()))
		if err := g.NewFileGen(file).GenFile(); err != nil {
			return errors.Wrapf(err, "generate %s", file.Desc.Path())
		}
	}
	return nil
}
