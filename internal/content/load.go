package content

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the [[spaces]] array from v. When v has no spaces the
// defaults are returned.
func Load(v *viper.Viper) ([]Space, error) {
	if v == nil || !v.IsSet("spaces") {
		return Defaults(), nil
	}
	var spaces []Space
	if err := v.UnmarshalKey("spaces", &spaces); err != nil {
		return nil, fmt.Errorf("decode spaces: %w", err)
	}
	for i := range spaces {
		if spaces[i].Heading == "" {
			spaces[i].Heading = spaces[i].Title
		}
		spaces[i].Body = strings.TrimSpace(spaces[i].Body)
	}
	if err := Validate(spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

// LoadFile reads spaces from a TOML file. An empty path yields the defaults.
func LoadFile(path string) ([]Space, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Load(v)
}
