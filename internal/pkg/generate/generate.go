// Package generate creates one file-level target per source file
// matched by the "sources" globs of a generator target.
package generate

import (
	"os"
	"sort"
	"strings"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Generator binds a generator target type to the type of the generated file-level targets.
type Generator struct {
	From    *target.Type                 // the generator target type, for example "shell_sources"
	To      *target.Type                 // type of the generated targets, for example "shell_source"
	Sources *target.MultipleSourcesField // glob patterns field on the From type
	Source  *target.SingleSourceField    // source path field on the To type
}

// FileLevelTargets generates one target of the g.To type per matched source file.
// All explicitly set field values, except the sources globs, are copied to the generated targets.
func (g *Generator) FileLevelTargets(fs filesystem.Fs, generator *target.Instance) ([]*target.Instance, error) {
	if generator.Type() != g.From {
		return nil, errors.Errorf(
			`cannot generate targets from "%s": expected a "%s" target, found "%s"`,
			generator.Address().String(), g.From.Alias(), generator.Type().Alias(),
		)
	}

	patterns, err := g.Sources.Get(generator)
	if err != nil {
		return nil, err
	}

	files, err := matchSources(fs, generator.Address().Path(), patterns)
	if err != nil {
		return nil, err
	}

	// Copy explicitly set values, the sources globs stay on the generator.
	shared := generator.ExplicitValues()
	delete(shared, g.Sources.Alias())

	out := make([]*target.Instance, 0, len(files))
	for _, file := range files {
		values := make(map[string]any, len(shared)+1)
		for k, v := range shared {
			if _, found := g.To.Field(k); found {
				values[k] = v
			}
		}
		values[g.Source.Alias()] = file

		address := target.NewAddress(generator.Address().Path(), file)
		instance, err := target.NewInstance(g.To, address, values)
		if err != nil {
			return nil, err
		}
		out = append(out, instance)
	}
	return out, nil
}

// matchSources returns file names in the dir matching the include patterns
// and not matching any "!" exclude pattern, sorted by name.
func matchSources(fs filesystem.Fs, dir string, patterns []string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	var includes, excludes []string
	for _, pattern := range patterns {
		if excluded, found := strings.CutPrefix(pattern, "!"); found {
			excludes = append(excludes, excluded)
		} else {
			includes = append(includes, pattern)
		}
	}

	matched := make(map[string]bool)
	for _, pattern := range includes {
		err := fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			name := filesystem.Rel(dir, path)
			if ok, err := filesystem.Match(pattern, name); err != nil {
				return errors.Errorf(`invalid glob pattern "%s": %w`, pattern, err)
			} else if ok {
				matched[name] = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(matched))
	for name := range matched {
		excluded := false
		for _, pattern := range excludes {
			if ok, err := filesystem.Match(pattern, name); err != nil {
				return nil, errors.Errorf(`invalid glob pattern "!%s": %w`, pattern, err)
			} else if ok {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}
