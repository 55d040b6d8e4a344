package gantt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML shape for chart files. Tasks carry a ref so links can be declared by
// name rather than ID; the ref doubles as the task ID when none is given.
type chartFile struct {
	ID    string `yaml:"id"`
	Tasks []struct {
		ID     string  `yaml:"id"`
		Ref    string  `yaml:"ref"`
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Locked bool    `yaml:"locked"`
	} `yaml:"tasks"`
	Links []struct {
		ID      string  `yaml:"id"`
		From    string  `yaml:"from"`
		To      string  `yaml:"to"`
		Type    string  `yaml:"type"`
		Lag     float64 `yaml:"lag"`
		Elastic *bool   `yaml:"elastic"`
	} `yaml:"links"`
}

// LoadChartFile reads a chart definition from a YAML file and validates it.
// Link from/to fields name task refs (falling back to IDs), link types
// default to FS, and links default to elastic.
func LoadChartFile(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gantt: read chart file: %w", err)
	}
	return ParseChart(data)
}

// ParseChart parses YAML chart data. See LoadChartFile.
func ParseChart(data []byte) (*Chart, error) {
	var f chartFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gantt: parse chart file: %w", err)
	}

	c := &Chart{ID: f.ID}
	refs := make(map[string]string, len(f.Tasks))
	for i, ft := range f.Tasks {
		id := ft.ID
		if id == "" {
			id = ft.Ref
		}
		if id == "" {
			return nil, fmt.Errorf("gantt: task %d has neither id nor ref", i)
		}
		if ft.Ref != "" {
			refs[ft.Ref] = id
		}
		refs[id] = id
		c.Tasks = append(c.Tasks, Task{
			ID:     id,
			Bar:    Bar{X: ft.X, Y: ft.Y, Width: ft.Width, Height: ft.Height},
			Locked: ft.Locked,
		})
	}

	for i, fl := range f.Links {
		from, ok := refs[fl.From]
		if !ok {
			return nil, fmt.Errorf("gantt: link %d references unknown task %q", i, fl.From)
		}
		to, ok := refs[fl.To]
		if !ok {
			return nil, fmt.Errorf("gantt: link %d references unknown task %q", i, fl.To)
		}
		typ := LinkType(fl.Type)
		if fl.Type == "" {
			typ = FinishToStart
		}
		elastic := true
		if fl.Elastic != nil {
			elastic = *fl.Elastic
		}
		c.Links = append(c.Links, Link{
			ID:      fl.ID,
			From:    from,
			To:      to,
			Type:    typ,
			Lag:     fl.Lag,
			Elastic: elastic,
		})
	}

	if err := Validate(c.Tasks, c.Links); err != nil {
		return nil, err
	}
	return c, nil
}
