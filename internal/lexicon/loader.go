package lexicon

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// File is the on-disk shape of a lexicon extension:
//
//	entries:
//	  - canonical: golang
//	    category: technical
//	    variations: go lang, go-lang
//	    priority: high
type File struct {
	Entries []Entry `mapstructure:"entries" json:"entries"`
}

// LoadFile reads a YAML, JSON or TOML lexicon extension. Variations may be
// written as a list or as a comma-separated string.
func LoadFile(path string) ([]Entry, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading lexicon file %s: %w", path, err)
	}

	return decode(v.AllSettings())
}

func decode(raw map[string]any) ([]Entry, error) {
	var file File

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &file,
	})
	if err != nil {
		return nil, fmt.Errorf("creating lexicon decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding lexicon entries: %w", err)
	}

	return file.Entries, nil
}

// Load returns the default lexicon extended by the file at path. An empty
// path returns the default lexicon.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	l, err := Default().Extend(extra)
	if err != nil {
		return nil, fmt.Errorf("extending lexicon with %s: %w", path, err)
	}

	return l, nil
}
