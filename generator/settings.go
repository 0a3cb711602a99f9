package generator

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/yaroher/protoc-gen-go-leo/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type PluginSettings struct {
	// JSON enables MarshalJX and String on generated messages.
	JSON bool
	// SkipUnsupported skips non-string fields instead of failing.
	SkipUnsupported bool
	// Suffix is appended to generated type names.
	Suffix string
}

func DefaultPluginSettings() *PluginSettings {
	return &PluginSettings{JSON: true}
}

func mapGetOrDefault(paramsMap map[string]string, key string, defaultValue string) string {
	if val, ok := paramsMap[key]; ok {
		return val
	}
	return defaultValue
}

func parseBool(paramsMap map[string]string, key string, defaultValue bool) (bool, error) {
	raw := mapGetOrDefault(paramsMap, key, strconv.FormatBool(defaultValue))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "parameter %s", key)
	}
	return v, nil
}

// ParsePluginSettings parses a "k=v,k=v" plugin parameter string.
func ParsePluginSettings(parameter string) (*PluginSettings, error) {
	paramsMap := make(map[string]string)
	for _, param := range strings.Split(parameter, ",") {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		paramsMap[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	logger.Debug("plugin parameters", zap.String("raw", parameter), zap.Int("len", len(paramsMap)))

	settings := DefaultPluginSettings()
	var err error
	if settings.JSON, err = parseBool(paramsMap, "json", settings.JSON); err != nil {
		return nil, err
	}
	if settings.SkipUnsupported, err = parseBool(paramsMap, "skip_unsupported", settings.SkipUnsupported); err != nil {
		return nil, err
	}
	settings.Suffix = mapGetOrDefault(paramsMap, "suffix", "")
	return settings, nil
}

func NewPluginSettingsFromPlugin(p *protogen.Plugin) (*PluginSettings, error) {
	return ParsePluginSettings(p.Request.GetParameter())
}
