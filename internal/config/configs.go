package config

// ModelConfig is the base for all model configs.
type ModelConfig struct {
	Base `yaml:",inline"`
}

// NewModelConfig returns a ModelConfig keyed to the given registry name.
func NewModelConfig(name string) ModelConfig {
	return ModelConfig{Base: Base{Name: name, Type: TypeModel}}
}

// PreprocessorConfig is the base for all preprocessor configs.
type PreprocessorConfig struct {
	Base `yaml:",inline"`
}

func NewPreprocessorConfig(name string) PreprocessorConfig {
	return PreprocessorConfig{Base: Base{Name: name, Type: TypePreprocessor}}
}

// DatasetConfig is the base for all dataset configs.
type DatasetConfig struct {
	Base `yaml:",inline"`

	// Task names the task(s) this dataset is built for.
	Task string `yaml:"task,omitempty"`
	Path string `yaml:"path,omitempty"`
}

func NewDatasetConfig(name string) DatasetConfig {
	return DatasetConfig{Base: Base{Name: name, Type: TypeDataset}}
}

// EmbeddingConfig is the base for all embedding configs.
type EmbeddingConfig struct {
	Base `yaml:",inline"`

	Dim int `yaml:"dim,omitempty"`
}

func NewEmbeddingConfig(name string) EmbeddingConfig {
	return EmbeddingConfig{Base: Base{Name: name, Type: TypeEmbedding}}
}

// MetricConfig is the base for all metric configs.
type MetricConfig struct {
	Base `yaml:",inline"`
}

func NewMetricConfig(name string) MetricConfig {
	return MetricConfig{Base: Base{Name: name, Type: TypeMetric}}
}

// CriterionConfig is the base for all loss criterion configs.
type CriterionConfig struct {
	Base `yaml:",inline"`

	Reduction   string `yaml:"reduction,omitempty"`
	IgnoreIndex int    `yaml:"ignore_index,omitempty"`
}

func NewCriterionConfig(name string) CriterionConfig {
	return CriterionConfig{Base: Base{Name: name, Type: TypeCriterion}}
}

// OptimizerConfig is the base for all optimizer configs.
type OptimizerConfig struct {
	Base `yaml:",inline"`

	LR          float64 `yaml:"lr,omitempty"`
	WeightDecay float64 `yaml:"weight_decay,omitempty"`
}

func NewOptimizerConfig(name string) OptimizerConfig {
	return OptimizerConfig{Base: Base{Name: name, Type: TypeOptimizer}}
}

// SchedulerConfig is the base for all learning-rate scheduler configs.
type SchedulerConfig struct {
	Base `yaml:",inline"`

	Verbose bool `yaml:"verbose,omitempty"`
}

func NewSchedulerConfig(name string) SchedulerConfig {
	return SchedulerConfig{Base: Base{Name: name, Type: TypeScheduler}}
}

// TrainConfig bundles trainer settings with nested optimizer and scheduler
// configs. The nested values are merged field-by-field when a mapping
// override targets them; assigning a fresh instance replaces them wholesale.
type TrainConfig struct {
	Base `yaml:",inline"`

	Device         string           `yaml:"device,omitempty"`
	BatchSize      int              `yaml:"batch_size,omitempty"`
	Epochs         int              `yaml:"num_train_epochs,omitempty"`
	Metrics        []string         `yaml:"metrics,omitempty"`
	CheckpointsDir string           `yaml:"checkpoints_dir,omitempty"`
	Optimizer      *OptimizerConfig `yaml:"optimizer,omitempty"`
	Scheduler      *SchedulerConfig `yaml:"lr_scheduler,omitempty"`
}

func NewTrainConfig(name string) TrainConfig {
	return TrainConfig{Base: Base{Name: name, Type: TypeTrain}, Device: "cuda"}
}
