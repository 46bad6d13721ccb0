package entity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Population is an ordered set of entities keyed by name
type Population struct {
	members []*Entity
	byName  map[string]*Entity
}

// NewPopulation builds a population, rejecting invalid entities and duplicate names.
func NewPopulation(entities ...*Entity) (*Population, error) {
	p := &Population{byName: make(map[string]*Entity, len(entities))}
	for _, e := range entities {
		if err := p.Add(e); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add appends an entity to the population
func (p *Population) Add(e *Entity) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if p.byName == nil {
		p.byName = map[string]*Entity{}
	}
	if _, ok := p.byName[e.Name]; ok {
		return fmt.Errorf("entity %s already exists", e.Name)
	}
	p.members = append(p.members, e)
	p.byName[e.Name] = e
	return nil
}

// Len returns the number of entities
func (p *Population) Len() int {
	if p == nil {
		return 0
	}
	return len(p.members)
}

// Members returns the entities in insertion order
func (p *Population) Members() []*Entity {
	if p == nil {
		return nil
	}
	return append([]*Entity(nil), p.members...)
}

// Names returns every member name in insertion order
func (p *Population) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.members))
	for _, e := range p.members {
		names = append(names, e.Name)
	}
	return names
}

// Lookup finds an entity by name
func (p *Population) Lookup(name string) (*Entity, bool) {
	if p == nil {
		return nil, false
	}
	e, ok := p.byName[name]
	return e, ok
}

// Contains reports whether an entity with the given name exists.
func (p *Population) Contains(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// Taken returns the member names as a set
func (p *Population) Taken() map[string]struct{} {
	taken := make(map[string]struct{}, p.Len())
	for _, name := range p.Names() {
		taken[name] = struct{}{}
	}
	return taken
}

// record is the on-disk shape of an entity: friends are stored by name.
type record struct {
	Name    string   `yaml:"name"`
	Friends []string `yaml:"friends"`
}

// MarshalYAML implements yaml.Marshaler
func (p *Population) MarshalYAML() (interface{}, error) {
	records := make([]record, 0, p.Len())
	for _, e := range p.members {
		records = append(records, record{Name: e.Name, Friends: e.FriendNames()})
	}
	return records, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (p *Population) UnmarshalYAML(value *yaml.Node) error {
	var records []record
	if err := value.Decode(&records); err != nil {
		return err
	}
	loaded, err := NewPopulation()
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := loaded.Add(New(r.Name, r.Friends...)); err != nil {
			return err
		}
	}
	*p = *loaded
	return nil
}

// LoadPopulation reads a population from a YAML file
func LoadPopulation(filename string) (*Population, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read population file: %w", err)
	}

	var p Population
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse population file: %w", err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("population file %s defines no entities", filename)
	}
	return &p, nil
}

// SavePopulation writes a population to a YAML file
func SavePopulation(filename string, p *Population) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode population: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write population file: %w", err)
	}
	return nil
}
