package graph

// Project represents the scanned addon
type Project struct {
	Name      string    // Addon name
	RootURL   string    // Addon root location
	Sources   []*Source // Core file first, then module files in path order
	sourceMap map[string]int
}

// AddSource adds a source, a source with an already known path replaces the previous one
func (p *Project) AddSource(source *Source) {
	if p.sourceMap == nil {
		p.Init()
	}
	if idx, ok := p.sourceMap[source.Path]; ok {
		p.Sources[idx] = source
		return
	}
	p.sourceMap[source.Path] = len(p.Sources)
	p.Sources = append(p.Sources, source)
}

// LookupSource retrieves a source by its relative path
func (p *Project) LookupSource(path string) *Source {
	if p.sourceMap == nil {
		p.Init()
	}
	if idx, ok := p.sourceMap[path]; ok && idx < len(p.Sources) {
		return p.Sources[idx]
	}
	return nil
}

// Init indexes sources by path
func (p *Project) Init() {
	p.sourceMap = make(map[string]int, len(p.Sources))
	for i, source := range p.Sources {
		if source == nil {
			continue
		}
		p.sourceMap[source.Path] = i
	}
}
