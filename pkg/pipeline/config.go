package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// LoadConfig reads a TOML file on top of [DefaultOptions]. Keys the file
// does not set keep their defaults; unknown keys are an error so that typos
// do not pass silently.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, perrors.New(perrors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}

// DecodeOptions reads a JSON document on top of [DefaultOptions]. An empty
// body yields the defaults.
func DecodeOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if len(bytes.TrimSpace(data)) == 0 {
		return opts, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return Options{}, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decode options")
	}
	return opts, nil
}
