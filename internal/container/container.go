package container

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/osint-toolkit/config"
	catalog "github.com/inference-gateway/osint-toolkit/internal/catalog"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
	services "github.com/inference-gateway/osint-toolkit/internal/services"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

// ServiceContainer manages all application dependencies
type ServiceContainer struct {
	// Configuration
	config *config.Config

	// Data
	catalog *catalog.Catalog

	// Domain services
	generator  domain.Generator
	toolRunner domain.ToolRunner

	// UI components
	themeService  domain.ThemeService
	styleProvider *styles.Provider
}

// NewServiceContainer creates a new service container with all dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config) (*ServiceContainer, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tool catalog: %w", err)
	}

	generator, err := services.NewGenerator(ctx, cfg.Generation, cfg.ResolveAPIKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	return NewServiceContainerWithGenerator(cfg, cat, generator), nil
}

// NewServiceContainerWithGenerator wires the container around an existing
// catalog and generator (for testing)
func NewServiceContainerWithGenerator(cfg *config.Config, cat *catalog.Catalog, generator domain.Generator) *ServiceContainer {
	c := &ServiceContainer{
		config:    cfg,
		catalog:   cat,
		generator: generator,
	}

	c.initializeDomainServices()
	c.initializeUIComponents()

	logger.Debug("service container ready",
		"tools", cat.Len(),
		"backend", cfg.Generation.Backend,
		"model", cfg.Generation.Model,
		"theme", c.themeService.GetCurrentThemeName(),
	)
	return c
}

func (c *ServiceContainer) initializeDomainServices() {
	fileService := services.NewLocalFileService(c.config.Files.MaxSize)
	c.toolRunner = services.NewToolRunnerService(c.generator, fileService)
}

func (c *ServiceContainer) initializeUIComponents() {
	themeProvider := domain.NewThemeProvider()
	if name := c.config.UI.Theme; name != "" {
		if err := themeProvider.SetTheme(name); err != nil {
			logger.Warn("unknown theme, using default", "theme", name, "default", domain.DefaultThemeName)
		}
	}

	c.themeService = themeProvider
	c.styleProvider = styles.NewProvider(themeProvider)
}

func (c *ServiceContainer) GetCatalog() *catalog.Catalog {
	return c.catalog
}

func (c *ServiceContainer) GetToolRunner() domain.ToolRunner {
	return c.toolRunner
}

func (c *ServiceContainer) GetThemeService() domain.ThemeService {
	return c.themeService
}

func (c *ServiceContainer) GetStyleProvider() *styles.Provider {
	return c.styleProvider
}
