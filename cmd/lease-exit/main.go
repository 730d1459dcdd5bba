package main

import (
	"fmt"
	"os"

	"github.com/diillson/lease-exit-go/internal/adapter/driven/cache"
	"github.com/diillson/lease-exit-go/internal/adapter/driven/config"
	"github.com/diillson/lease-exit-go/internal/adapter/driven/export"
	"github.com/diillson/lease-exit-go/internal/adapter/driven/lease"
	"github.com/diillson/lease-exit-go/internal/adapter/driven/storage"
	"github.com/diillson/lease-exit-go/internal/adapter/driving/cli"
	"github.com/diillson/lease-exit-go/internal/application/usecase"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/diillson/lease-exit-go/internal/shared/types"
	"github.com/diillson/lease-exit-go/pkg/console"
	"github.com/diillson/lease-exit-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	leaseRepo := lease.NewLeaseRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Cache e publicação dependem de flags que só são conhecidas na execução
	newCache := func(addr string) repository.CacheRepository {
		if addr == "" {
			return localCache()
		}
		return cache.NewRedisCache(addr)
	}
	newPublisher := func(args *types.CLIArgs) repository.ReportPublisher {
		return storage.NewS3Publisher(storage.S3Options{
			Bucket:  args.S3Bucket,
			Prefix:  args.S3Prefix,
			Profile: args.AWSProfile,
			Region:  args.AWSRegion,
		})
	}

	// Inicializa o caso de uso
	leaseExitUseCase := usecase.NewLeaseExitUseCase(
		leaseRepo,
		exportRepo,
		configRepo,
		consoleImpl,
		newCache,
		newPublisher,
	)

	app.SetLeaseExitUseCase(leaseExitUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// localCache guarda os relatórios em disco entre execuções; sem diretório de
// cache disponível, fica apenas em memória.
func localCache() repository.CacheRepository {
	path, err := cache.DefaultCachePath()
	if err != nil {
		return cache.NewMemoryCache()
	}
	fileCache, err := cache.NewFileCache(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return cache.NewMemoryCache()
	}
	return fileCache
}
