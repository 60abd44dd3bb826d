package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BartekS5/tabconv/pkg/models"
)

// LoadJob reads and parses a job file from the given path. YAML and JSON
// files are both accepted.
func LoadJob(filePath string) (*models.Job, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file '%s': %w", filePath, err)
	}

	var job models.Job
	if err := yaml.Unmarshal(bytes, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file '%s': %w", filePath, err)
	}

	if job.Source.Kind == "" {
		job.Source.Kind = models.KindFile
	}
	return &job, nil
}
