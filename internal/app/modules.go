package app

import (
	"github.com/quillml/quill/internal/registry"
	"github.com/quillml/quill/modules/accuracy"
	"github.com/quillml/quill/modules/adamw"
	"github.com/quillml/quill/modules/cross_entropy"
	"github.com/quillml/quill/modules/distilbert"
	"github.com/quillml/quill/modules/linear_scheduler"
	"github.com/quillml/quill/modules/text_classification_dataset"
	"github.com/quillml/quill/modules/whitespace_tokenizer"
	"github.com/quillml/quill/modules/word2vec"
)

// coreModules is the definitive list of all modules that are compiled into
// the quill binary.
var coreModules = []registry.Module{
	distilbert.Module{},
	whitespace_tokenizer.Module{},
	text_classification_dataset.Module{},
	word2vec.Module{},
	accuracy.Module{},
	adamw.Module{},
	linear_scheduler.Module{},
	cross_entropy.Module{},
}
