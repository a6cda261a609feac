package exporter

import (
	"compat-matrix/internal/config"
	"compat-matrix/internal/model"
)

// Exporter writes a compatibility report in one output format
type Exporter interface {
	Export(report *model.Report, cfg *config.Config) error
}
