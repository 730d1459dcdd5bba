package repository

import (
	"github.com/diillson/lease-exit-go/internal/domain/entity"
)

// LeaseRepository loads a lease record from a TOML, YAML or JSON file.
type LeaseRepository interface {
	LoadLease(filePath string) (*entity.LeaseRecord, error)
}
