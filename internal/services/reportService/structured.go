package reportservice

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
)

type docField struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
	Unit  string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type docSection struct {
	Key    string     `json:"key" yaml:"key"`
	Title  string     `json:"title" yaml:"title"`
	Fields []docField `json:"fields" yaml:"fields"`
}

type document struct {
	Profile  string       `json:"profile" yaml:"profile"`
	Sections []docSection `json:"sections" yaml:"sections"`
}

// toDocument flattens a report for encoding. Absent optionals and failed
// fields encode as null; failures carry their error text.
func toDocument(info *platformservice.PlatformInfo) document {
	doc := document{Profile: info.Profile, Sections: []docSection{}}

	for _, sec := range info.Sections {
		ds := docSection{Key: sec.Key, Title: sec.Title, Fields: []docField{}}
		for _, f := range sec.Fields {
			df := docField{Key: f.Key, Label: f.Label, Unit: f.Unit}
			if f.Err != nil {
				df.Error = f.Err.Error()
			} else if p, ok := f.Value.(*string); ok {
				if p != nil {
					df.Value = *p
				}
			} else {
				df.Value = f.Value
			}
			ds.Fields = append(ds.Fields, df)
		}
		doc.Sections = append(doc.Sections, ds)
	}

	return doc
}

func renderJSON(w io.Writer, info *platformservice.PlatformInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(info))
}

func renderYAML(w io.Writer, info *platformservice.PlatformInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(info)); err != nil {
		return err
	}
	return enc.Close()
}
