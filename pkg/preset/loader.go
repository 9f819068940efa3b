package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxInheritDepth bounds inherit chains so a miswritten preset cannot
// recurse forever.
const maxInheritDepth = 8

type Loader struct {
	assetsPath string
	cache      map[string]*Preset
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		cache:      make(map[string]*Preset),
	}
}

// Load reads presets/<name>.json under the loader's assets path,
// resolving inherit chains and caching the merged result.
func (l *Loader) Load(name string) (*Preset, error) {
	return l.load(name, 0)
}

func (l *Loader) load(name string, depth int) (*Preset, error) {
	if depth >= maxInheritDepth {
		return nil, fmt.Errorf("preset '%s': inherit chain too deep", name)
	}

	if p, ok := l.cache[name]; ok {
		return p, nil
	}

	path := filepath.Join(l.assetsPath, "presets", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal preset json: %w", err)
	}

	if p.Inherit != "" {
		parent, err := l.load(p.Inherit, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent preset '%s': %w", p.Inherit, err)
		}
		merge(&p, parent)
	}

	l.cache[name] = &p
	return &p, nil
}

// merge copies fields the child left unset from the parent.
func merge(child, parent *Preset) {
	if child.Seed == nil {
		child.Seed = parent.Seed
	}
	if child.DomainSize == nil {
		child.DomainSize = parent.DomainSize
	}
	if child.SphereCount == nil {
		child.SphereCount = parent.SphereCount
	}
	if child.DeltaRatio == nil {
		child.DeltaRatio = parent.DeltaRatio
	}
	if child.SigmaRatio == nil {
		child.SigmaRatio = parent.SigmaRatio
	}
	if child.Alpha == nil {
		child.Alpha = parent.Alpha
	}
	if child.Beta == nil {
		child.Beta = parent.Beta
	}
	if child.BaseRadiusRatio == nil {
		child.BaseRadiusRatio = parent.BaseRadiusRatio
	}
	if child.TextureSize == nil {
		child.TextureSize = parent.TextureSize
	}
	if child.Frequency == nil {
		child.Frequency = parent.Frequency
	}
}
