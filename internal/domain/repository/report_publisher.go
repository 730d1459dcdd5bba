package repository

import "context"

// ReportPublisher uploads an exported report file and returns where it was stored.
type ReportPublisher interface {
	Publish(ctx context.Context, localPath string) (string, error)
}
