package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/lixenwraith/launcher"
)

// writeQuery runs a jq filter over the merged configuration and prints each
// result on its own line. Strings are printed raw, everything else as
// compact JSON.
func writeQuery(w io.Writer, cfg *launcher.Config, filter string) error {
	query, err := gojq.Parse(filter)
	if err != nil {
		return fmt.Errorf("query: parse error: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("query: compile error: %w", err)
	}

	// gojq accepts only JSON-shaped values, so []string and int64 go through a round trip
	data, err := cfg.Marshal(launcher.FormatJSON)
	if err != nil {
		return err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("query: %w", err)
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("query: execution error: %w", err)
		}

		switch val := v.(type) {
		case string:
			fmt.Fprintln(w, val)
		case nil:
			// null produces no output
		default:
			output, err := json.Marshal(val)
			if err != nil {
				return fmt.Errorf("query: marshal error: %w", err)
			}
			fmt.Fprintln(w, string(output))
		}
	}
	return nil
}
