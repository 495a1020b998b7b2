// FILE: lixenwraith/launcher/filter.go
package launcher

// KeyFilter restricts which CLI argument and environment variable names take
// part in a resolution. Options-file keys are never filtered.
//
// When Enabled, a CLI key passes if it is a declared field name or listed in
// Args; an environment variable passes if it is a declared field name or
// listed in Env. The reserved optionsFile key always passes. When disabled
// every key from every source participates. A field with an env alias is fed
// from its alias either way.
type KeyFilter struct {
	Enabled bool
	Args    []string
	Env     []string
}

// DefaultKeyFilter returns the standard filter: enabled with no extra names.
func DefaultKeyFilter() KeyFilter {
	return KeyFilter{Enabled: true}
}

// Unfiltered returns a filter that lets every key through.
func Unfiltered() KeyFilter {
	return KeyFilter{}
}

// allowSets builds the CLI and env allow-lists for the given fields.
// Nil sets mean no filtering. Fields fed through an env alias are read by
// alias and do not put their own name on the env list.
func (f KeyFilter) allowSets(fields []FieldSpec) (args, env map[string]bool) {
	if !f.Enabled {
		return nil, nil
	}

	names := make([]string, 0, len(fields)+1)
	envNames := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		names = append(names, field.Name)
		if field.envName() == field.Name {
			envNames = append(envNames, field.Name)
		}
	}
	names = append(names, OptionsFileKey)
	envNames = append(envNames, OptionsFileKey)

	return stringSet(names, f.Args), stringSet(envNames, f.Env)
}
