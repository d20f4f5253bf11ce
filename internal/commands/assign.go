package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/charts"
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

type AssignCmd struct {
	File string `arg:"" help:"CSV/TSV file of taxon,group rows (one column: each value is its own group; - for stdin)."`
	ColorFlags
	Output string `name:"output" short:"o" help:"Output format." default:"swatches" enum:"swatches,json,yaml,csv"`
}

func (a *AssignCmd) Run(ctx *Context) error {
	cfg, err := a.buildConfig()
	if err != nil {
		return err
	}
	items, err := ReadItems(a.File)
	if err != nil {
		return err
	}

	result, warnings, err := colormap.CreateColorMap(items, cfg, ctx.Registry)
	printWarnings(warnings)
	if err != nil {
		return err
	}

	switch a.Output {
	case "swatches":
		fmt.Print(charts.Swatches(result))
	case "json":
		out, err := toJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := toYAML(result)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "csv":
		if err := writeCSV(os.Stdout, result); err != nil {
			return err
		}
	}
	return nil
}

// assignmentRecord is the serialized form of one assignment.
type assignmentRecord struct {
	Taxon string `json:"taxon" yaml:"taxon"`
	Group string `json:"group" yaml:"group"`
	Color string `json:"color" yaml:"color"`
}

func massageAssignments(assignments []colormap.Assignment) []assignmentRecord {
	records := make([]assignmentRecord, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, assignmentRecord{
			Taxon: a.Item,
			Group: a.Group,
			Color: a.Color,
		})
	}
	return records
}

func toJSON(assignments []colormap.Assignment) ([]byte, error) {
	return json.MarshalIndent(massageAssignments(assignments), "", "  ")
}

func toYAML(assignments []colormap.Assignment) ([]byte, error) {
	return yaml.Marshal(massageAssignments(assignments))
}

func writeCSV(out *os.File, assignments []colormap.Assignment) error {
	w := csv.NewWriter(out)
	for _, a := range assignments {
		if err := w.Write([]string{a.Item, a.Group, a.Color}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
