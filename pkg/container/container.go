package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"mediaportal-backend/internal/config"
	contentHandler "mediaportal-backend/internal/domains/content/handler"
	contentModel "mediaportal-backend/internal/domains/content/model"
	contentRepo "mediaportal-backend/internal/domains/content/repository"
	contentService "mediaportal-backend/internal/domains/content/service"
	mediaHandler "mediaportal-backend/internal/domains/media/handler"
	mediaService "mediaportal-backend/internal/domains/media/service"
	infraCache "mediaportal-backend/internal/infrastructure/cache"
	"mediaportal-backend/internal/infrastructure/database"
	"mediaportal-backend/internal/infrastructure/storage"
	"mediaportal-backend/pkg/cache"
	"mediaportal-backend/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds ALL application dependencies.
// It is the root of the dependency graph; everything in it is a singleton
// living for the whole process.
type Container struct {
	// Infrastructure layer - shared across domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// Media pipeline
	MediaService mediaService.Service
	MediaHandler *mediaHandler.MediaHandler

	// Content engine - one repository/service/handler per kind,
	// all running the same generic code parameterized by schema.
	ContentRepos    map[string]contentRepo.Repository
	ContentServices map[string]contentService.Service
	ContentHandlers []*contentHandler.ContentHandler
}

// NewContainer builds and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache, Storage) - depends on Config
// 3. Repositories - depend on infrastructure
// 4. Services - depend on repositories
// 5. Handlers - depend on services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is not critical - lists fall back to the database
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 5: MEDIA PIPELINE
	// ========================================
	c.MediaService = mediaService.NewMediaService(store)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)

	// ========================================
	// STEP 6: CONTENT ENGINE (one stack per kind)
	// ========================================
	log.Println("📦 Initializing content kinds...")

	c.ContentRepos = make(map[string]contentRepo.Repository)
	c.ContentServices = make(map[string]contentService.Service)

	for _, schema := range contentModel.Kinds() {
		repo := contentRepo.NewPostgresRepository(db.Pool, c.Cache, schema)

		if err := repo.EnsureTable(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to bootstrap %s table: %w", schema.Kind, err)
		}

		svc := contentService.NewContentService(schema, repo, c.MediaService)

		c.ContentRepos[schema.Kind] = repo
		c.ContentServices[schema.Kind] = svc
		c.ContentHandlers = append(c.ContentHandlers, contentHandler.NewContentHandler(schema, svc))

		log.Printf("✅ Content kind ready: %s", schema.Kind)
	}

	log.Println("🎉 Container initialized successfully!")
	return c, nil
}

// Cleanup releases every connection held by the container.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Cleanup complete")
}
