// Package roster loads team/machine rosters from YAML files. A file roster
// serves sites that do not keep the roster in the shared database; the
// engine itself only ever sees the read-only RosterRepo view.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

type teamYAML struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Reparto string `yaml:"reparto"`
	Leader  string `yaml:"leader"`
}

type machineYAML struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Reparto  string `yaml:"reparto"`
	MinStaff int    `yaml:"min_staff"`
}

type rosterYAML struct {
	Teams    []teamYAML    `yaml:"teams"`
	Machines []machineYAML `yaml:"machines"`
}

// Roster is a parsed roster file. Team order is preserved; it drives the
// coordinator rotation cycle.
type Roster struct {
	Teams    []domain.Team
	Machines []domain.Machine
}

// Load reads and validates a YAML roster file.
func Load(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var doc rosterYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	r := &Roster{}
	seenTeams := make(map[string]bool)
	for i, t := range doc.Teams {
		if t.ID == "" {
			return nil, fmt.Errorf("team %d: missing id: %w", i, domain.ErrInvalidArgument)
		}
		if seenTeams[t.ID] {
			return nil, fmt.Errorf("team %s: duplicate id: %w", t.ID, domain.ErrInvalidArgument)
		}
		seenTeams[t.ID] = true
		r.Teams = append(r.Teams, domain.Team{
			ID:      t.ID,
			Label:   domain.CoalesceStr(t.Label, t.ID),
			Reparto: t.Reparto,
			Leader:  t.Leader,
		})
	}

	seenMachines := make(map[string]bool)
	for i, m := range doc.Machines {
		if m.ID == "" {
			return nil, fmt.Errorf("machine %d: missing id: %w", i, domain.ErrInvalidArgument)
		}
		if seenMachines[m.ID] {
			return nil, fmt.Errorf("machine %s: duplicate id: %w", m.ID, domain.ErrInvalidArgument)
		}
		seenMachines[m.ID] = true
		r.Machines = append(r.Machines, domain.Machine{
			ID:       m.ID,
			Name:     domain.CoalesceStr(m.Name, m.ID),
			Reparto:  m.Reparto,
			MinStaff: m.MinStaff,
		})
	}

	return r, nil
}
