package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/katalvlaran/brandnum/refined"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// emit writes text in text mode and the encoded v otherwise.
func (t *Global) emit(text string, v interface{}) (err error) {
	var encoded []byte

	switch t.Format {
	case formatJSON:
		if encoded, err = json.Marshal(v); err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
		encoded = append(encoded, '\n')
	case formatYAML:
		if encoded, err = yaml.Marshal(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
	default:
		encoded = []byte(text + "\n")
	}

	if _, err = t.Out.Write(encoded); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	return nil
}

// descriptorView is the serialized form of a registered domain.
type descriptorView struct {
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	MinValue    float64 `json:"min_value" yaml:"min_value"`
	MaxValue    float64 `json:"max_value" yaml:"max_value"`
	ExcludeZero bool    `json:"exclude_zero" yaml:"exclude_zero"`
	TypeName    string  `json:"type_name" yaml:"type_name"`
}

func (d descriptorView) String() string {
	return fmt.Sprintf("%s: %s, category %s, bounds [%s, %s], members [%s, %s], exclude zero %t",
		d.Name, d.TypeName, d.Category,
		refined.FormatNumber(d.Min), refined.FormatNumber(d.Max),
		refined.FormatNumber(d.MinValue), refined.FormatNumber(d.MaxValue),
		d.ExcludeZero)
}

// resultView carries a single number.
type resultView struct {
	Domain string  `json:"domain" yaml:"domain"`
	Value  float64 `json:"value" yaml:"value"`
}

// membershipView carries the answer of the is command.
type membershipView struct {
	Domain string `json:"domain" yaml:"domain"`
	Input  string `json:"input" yaml:"input"`
	Member bool   `json:"member" yaml:"member"`
}
