package iface

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/foundation/errors"
)

// Report is a point-in-time snapshot of a Registry for diagnostics.
type Report struct {
	Interfaces      []InterfaceReport      `yaml:"interfaces"`
	Implementations []ImplementationReport `yaml:"implementations,omitempty"`
	Adapters        []AdapterReport        `yaml:"adapters,omitempty"`
	FullChecking    bool                   `yaml:"full_checking"`
}

// InterfaceReport describes one declared interface.
type InterfaceReport struct {
	Name    string         `yaml:"name"`
	Members []MemberReport `yaml:"members"`
}

// MemberReport describes one interface member.
type MemberReport struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Params []string `yaml:"params,omitempty"`
	Type   string   `yaml:"type,omitempty"`
}

// ImplementationReport lists the interfaces one type declared directly.
type ImplementationReport struct {
	Type       string   `yaml:"type"`
	Interfaces []string `yaml:"interfaces"`
}

// AdapterReport describes one registered adapter.
type AdapterReport struct {
	Source    string `yaml:"source"`
	Interface string `yaml:"interface"`
}

// Report snapshots the registry. Interfaces and adapters are listed in
// registration order, implementations sorted by type name.
func (r *Registry) Report() Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep := Report{FullChecking: r.fullChecking}

	for _, i := range r.order {
		ir := InterfaceReport{Name: i.name}
		for _, m := range i.members {
			mr := MemberReport{Name: m.Name, Kind: m.Kind.String(), Params: m.Params}
			if m.Type != nil {
				mr.Type = m.Type.String()
			}
			ir.Members = append(ir.Members, mr)
		}
		rep.Interfaces = append(rep.Interfaces, ir)
	}

	for t, rec := range r.records {
		impl := ImplementationReport{Type: t.String()}
		for _, i := range rec.interfaces {
			impl.Interfaces = append(impl.Interfaces, i.name)
		}
		rep.Implementations = append(rep.Implementations, impl)
	}
	sort.Slice(rep.Implementations, func(a, b int) bool {
		return rep.Implementations[a].Type < rep.Implementations[b].Type
	})

	for _, key := range r.adapterSeq {
		rep.Adapters = append(rep.Adapters, AdapterReport{Source: key.source.String(), Interface: key.iface.name})
	}
	return rep
}

// YAML renders the report as YAML.
func (rep Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode registry report")
	}
	return data, nil
}
