// FILE: lixenwraith/launcher/decode.go
package launcher

import (
	"fmt"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/mitchellh/mapstructure"
)

// Scan decodes the merged configuration into target, which must be a
// non-nil pointer to a struct or map. Struct fields are matched by their
// "json" tag; weak typing lets "8080" fill an int and "true" fill a bool.
func (c *Config) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(c.Map()); err != nil {
		return fmt.Errorf("failed to scan config into %T: %w", target, err)
	}
	return nil
}

// ScanWithDefaults scans into target, then fills any field still at its zero
// value from defaults. defaults must have the same type as *target.
func (c *Config) ScanWithDefaults(target, defaults any) error {
	if err := c.Scan(target); err != nil {
		return err
	}
	if defaults == nil {
		return nil
	}
	if err := mergo.Merge(target, defaults); err != nil {
		return fmt.Errorf("failed to apply defaults to %T: %w", target, err)
	}
	return nil
}

// decodeHook returns the composite decode hook used by Scan
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		// Space-delimited, matching array coercion of env and file strings
		mapstructure.StringToSliceHookFunc(" "),
	)
}
