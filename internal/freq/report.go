package freq

import (
	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

// Report is the machine-readable summary of one analysis run, printed as
// JSON or YAML behind --format.
type Report struct {
	RunID            string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Source           string            `json:"source" yaml:"source"`
	Language         string            `json:"language,omitempty" yaml:"language,omitempty"`
	FromCache        bool              `json:"from_cache" yaml:"from_cache"`
	Workers          int               `json:"workers" yaml:"workers"`
	TotalWords       int               `json:"total_words" yaml:"total_words"`
	DistinctWords    int               `json:"distinct_words" yaml:"distinct_words"`
	TotalTimeSeconds float64           `json:"total_time_seconds" yaml:"total_time_seconds"`
	Top              []wordcount.Entry `json:"top" yaml:"top"`
}
