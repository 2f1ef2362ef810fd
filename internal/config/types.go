package config

import "fmt"

// DefaultFilename is the conventional name of a config document inside a
// local directory or hub repository.
const DefaultFilename = "config.yaml"

// Type identifies the registry partition a config belongs to. Its string
// form is the `config_type` value in serialized documents.
type Type string

const (
	TypeModel        Type = "model"
	TypePreprocessor Type = "preprocessor"
	TypeDataset      Type = "dataset"
	TypeEmbedding    Type = "embedding"
	TypeMetric       Type = "metric"
	TypeOptimizer    Type = "optimizer"
	TypeScheduler    Type = "scheduler"
	TypeCriterion    Type = "criterion"

	// TypeTrain marks a training recipe. Train configs are never resolved
	// through the registry; they exist to bundle nested optimizer and
	// scheduler configs with trainer settings.
	TypeTrain Type = "train"
)

// Types lists every registry-resolvable config type.
var Types = []Type{
	TypeModel,
	TypePreprocessor,
	TypeDataset,
	TypeEmbedding,
	TypeMetric,
	TypeOptimizer,
	TypeScheduler,
	TypeCriterion,
}

// ParseType converts the string form of a config type back into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range append(Types, TypeTrain) {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown config_type %q", s)
}

func (t Type) String() string { return string(t) }

// Config is the interface shared by all typed configs. It is satisfied by
// embedding Base.
type Config interface {
	// ConfigName returns the module's registry key.
	ConfigName() string
	// ConfigKind returns the registry partition for this config. It is fixed
	// at construction time; Merge never changes it.
	ConfigKind() Type
}

// Base carries the fields common to every config document. Concrete configs
// embed it with a `yaml:",inline"` tag.
type Base struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"config_type"`

	// Extra holds fields from documents or overrides that the struct does
	// not declare. They survive a save/load round trip.
	Extra map[string]any `yaml:",inline"`
}

func (b *Base) ConfigName() string { return b.Name }

func (b *Base) ConfigKind() Type { return b.Type }
