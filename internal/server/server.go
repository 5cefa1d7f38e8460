// Package server wires the HTTP layer: routing, middleware, and handlers.
package server

import (
	"time"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/middleware"
	"quill/internal/repository"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds the Fiber app and every dependency the handlers need.
type Server struct {
	app    *fiber.App
	config *config.Config
	db     *gorm.DB
	rdb    *redis.Client
	cache  *cache.Cache

	users    repository.UserRepository
	posts    *service.PostService
	groups   *service.GroupService
	comments *service.CommentService
	follows  *service.FollowService
}

// NewServer connects to the database and Redis and builds a fully wired server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	rdb := cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, rdb), nil
}

// NewServerWithDeps builds a server on top of existing connections. Tests
// use it with an in-memory database and miniredis; rdb may be nil, which
// disables caching and rate limiting.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Server {
	c := cache.New(rdb)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "quill-api",
			ErrorHandler: errorHandler,
		}),
		config: cfg,
		db:     db,
		rdb:    rdb,
		cache:  c,
		users:  userRepo,
		posts: service.NewPostService(postRepo, groupRepo, userRepo, c,
			cfg.PostsPerPage, time.Duration(cfg.IndexCacheTTL)*time.Second),
		groups:   service.NewGroupService(groupRepo),
		comments: service.NewCommentService(commentRepo, postRepo),
		follows:  service.NewFollowService(followRepo, userRepo),
	}

	s.SetupMiddleware()
	s.SetupRoutes()
	return s
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware installs the shared middleware stack in order.
func (s *Server) SetupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(middleware.TracingMiddleware())
	s.app.Use(middleware.ContextMiddleware())

	prom := middleware.InitMetrics("quill-api")
	prom.RegisterAt(s.app, "/metrics")
	s.app.Use(middleware.MetricsMiddleware(prom))

	s.app.Use(helmet.New())
	s.app.Use(middleware.StructuredLogger())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
}

// SetupRoutes registers every route.
func (s *Server) SetupRoutes() {
	s.app.Get("/health/live", s.HealthLive)
	s.app.Get("/health/ready", s.HealthReady)

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.rdb, 5, time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.rdb, 10, time.Minute, "login"), s.Login)

	api.Get("/posts", s.ListPosts)
	api.Get("/posts/:id", s.GetPost)
	api.Get("/posts/:id/comments", s.ListComments)

	api.Get("/groups", s.ListGroups)
	api.Get("/groups/:slug", s.GetGroup)
	api.Get("/groups/:slug/posts", s.ListGroupPosts)

	api.Get("/users/:username", s.GetProfile)
	api.Get("/users/:username/posts", s.ListProfilePosts)

	protected := api.Group("", s.AuthRequired())
	protected.Post("/posts", middleware.RateLimit(s.rdb, 30, time.Minute, "write"), s.CreatePost)
	protected.Put("/posts/:id", s.UpdatePost)
	protected.Delete("/posts/:id", s.DeletePost)
	protected.Post("/posts/:id/comments", middleware.RateLimit(s.rdb, 30, time.Minute, "comment"), s.AddComment)

	protected.Get("/feed", s.Feed)
	protected.Post("/users/:username/follow", s.FollowUser)
	protected.Delete("/users/:username/follow", s.UnfollowUser)

	protected.Get("/users/me", s.CurrentUser)
	protected.Get("/users/me/following", s.Following)

	admin := api.Group("", s.AuthRequired(), s.AdminRequired())
	admin.Post("/groups", s.CreateGroup)
	admin.Delete("/cache/index", s.ClearIndexCache)
}

// HealthLive reports process liveness.
func (s *Server) HealthLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HealthReady reports readiness: the database must answer, Redis is
// reported but optional.
func (s *Server) HealthReady(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "down",
		})
	}

	redisStatus := "disabled"
	if s.rdb != nil {
		redisStatus = "up"
		if err := s.rdb.Ping(c.UserContext()).Err(); err != nil {
			redisStatus = "down"
		}
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "up",
		"redis":    redisStatus,
	})
}

// Listen starts serving on the configured port.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
