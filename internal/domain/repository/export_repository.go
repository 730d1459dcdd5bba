package repository

import (
	"github.com/diillson/lease-exit-go/internal/domain/entity"
)

// ExportRepository writes a report to disk and returns the absolute path of the file.
type ExportRepository interface {
	ExportToCSV(report entity.Report, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.Report, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.Report, filename string, outputDir string) (string, error)
}
