// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cache"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/app/handlers"
	"github.com/rately/rately/app/middleware"
	"github.com/rately/rately/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app                   *fiber.App
	hotelHandler          handlers.HotelHandlerInterface
	recommendationHandler handlers.RecommendationHandlerInterface
	historyHandler        handlers.HistoryHandlerInterface
	competitorHandler     handlers.CompetitorHandlerInterface
	authMiddleware        *middleware.AuthMiddleware
	authRequired          bool
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	hotelHandler handlers.HotelHandlerInterface,
	recommendationHandler handlers.RecommendationHandlerInterface,
	historyHandler handlers.HistoryHandlerInterface,
	competitorHandler handlers.CompetitorHandlerInterface,
	authMiddleware *middleware.AuthMiddleware,
	authRequired bool,
) Router {
	// Configure Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Rately API",
		ServerHeader: "Rately",
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:                   app,
		hotelHandler:          hotelHandler,
		recommendationHandler: recommendationHandler,
		historyHandler:        historyHandler,
		competitorHandler:     competitorHandler,
		authMiddleware:        authMiddleware,
		authRequired:          authRequired,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	// Global middleware
	r.setupMiddleware()

	// Prometheus scrape endpoint (outside the API group, no rate limiting)
	r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	// API documentation route (development only)
	if os.Getenv("APP_ENV") == "development" || os.Getenv("APP_ENV") == "local" {
		api.Get("/docs", r.getAPIDocumentation)
		api.Get("/swagger.json", r.serveSwaggerJSON)
		// Serve Swagger UI
		r.app.Get("/swagger", r.serveSwaggerUI)
		log.Println("API documentation enabled for development")
	}

	// Apply general rate limiting to all API routes (aligned with nginx)
	api.Use(limiter.New(limiter.Config{
		Max:        2000,            // Maximum 2000 requests (matches nginx api zone)
		Expiration: 1 * time.Minute, // Per minute
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP() // Rate limit by IP
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			// Skip rate limiting for health checks
			return c.Path() == "/api/v1/health"
		},
	}))

	// Token-based auth is optional for single-tenant installs
	if r.authMiddleware != nil {
		if r.authRequired {
			api.Use(r.authMiddleware.Authenticate())
		} else {
			api.Use(r.authMiddleware.OptionalAuth())
		}
	}

	// Hotel portfolio endpoints
	api.Post("/hotels", r.hotelHandler.CreateHotel)
	api.Get("/hotels", r.hotelHandler.ListHotels)
	api.Get("/hotels/:uuid", r.hotelHandler.GetHotel)
	api.Put("/hotels/:uuid", r.hotelHandler.UpdateHotel)

	// Price recommendation endpoints
	api.Post("/hotels/:uuid/recommendations", r.recommendationHandler.RecommendPrice)
	api.Get("/hotels/:uuid/recommendations/calendar", r.recommendationHandler.RecommendCalendar)
	api.Get("/hotels/:uuid/recommendations/logs", r.recommendationHandler.ListRecommendationLogs)

	// Historical performance endpoints
	api.Put("/hotels/:uuid/history", r.historyHandler.UpsertRecord)
	api.Get("/hotels/:uuid/history", r.historyHandler.ListRecords)
	api.Post("/hotels/:uuid/history/import", r.historyHandler.ImportRecords)
	api.Get("/hotels/:uuid/history/summary", r.historyHandler.RevenueSummary)
	api.Get("/hotels/:uuid/history/export", r.historyHandler.ExportRecords)

	// Competitor rate endpoints
	api.Post("/hotels/:uuid/competitors", r.competitorHandler.RecordSnapshot)
	api.Get("/hotels/:uuid/competitors", r.competitorHandler.ListSnapshots)
	api.Post("/competitors/sync", r.competitorHandler.SyncCompetitorPrices)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// SetupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "DENY",
		HSTSMaxAge:                31536000, // 1 year
		HSTSExcludeSubdomains:     false,
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' https:; connect-src 'self' https:; frame-ancestors 'none';",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	}))

	// CORS middleware with production settings
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://rately.io",
			"https://api.rately.io",
			"https://app.rately.io",
			"https://dashboard.rately.io",
		},
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"X-API-Key",
			"Cache-Control",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"X-Response-Time",
		},
		AllowCredentials: true,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
		Next: func(c fiber.Ctx) bool {
			// Skip compression for binary downloads like XLSX exports
			contentType := c.Get("Content-Type")
			return contains(contentType, "image/") ||
				contains(contentType, "application/vnd.openxmlformats")
		},
	}))

	// Cache middleware for static content
	r.app.Use(cache.New(cache.Config{
		Next: func(c fiber.Ctx) bool {
			// Only cache GET requests to specific endpoints
			return c.Method() != "GET" ||
				!contains(c.Path(), "/health") &&
					!contains(c.Path(), "/docs")
		},
		Expiration:   30 * time.Minute,
		DisableCacheControl: false,
	}))

	// Advanced logging middleware
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			// Skip logging for health checks in production
			return c.Path() == "/api/v1/health" || c.Path() == "/metrics"
		},
	}))

	// Prometheus HTTP metrics
	r.app.Use(middleware.Metrics())

	// Custom security middleware
	r.app.Use(r.securityMiddleware)

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			// Log panic with request context
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Custom security middleware
func (r *FiberRouter) securityMiddleware(c fiber.Ctx) error {
	// Add security headers
	c.Set("X-Response-Time", utils.UTCNow().Format(time.RFC3339))
	c.Set("Server", "Rately")

	// Continue to next middleware
	return c.Next()
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   "1.0.0",
			"service":   "rately-api",
		},
	})
}

// API documentation endpoint
func (r *FiberRouter) getAPIDocumentation(c fiber.Ctx) error {
	docs := GetRouteDocumentation()
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "API documentation retrieved successfully",
		Data: fiber.Map{
			"title":       "Rately API Documentation",
			"version":     "1.0.0",
			"description": "Hotel dynamic pricing and revenue management API",
			"endpoints":   docs,
		},
	})
}

// Serve Swagger UI HTML page
func (r *FiberRouter) serveSwaggerUI(c fiber.Ctx) error {
	htmlContent := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rately API - Swagger UI</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css" />
    <style>
        html {
            box-sizing: border-box;
            overflow: -moz-scrollbars-vertical;
            overflow-y: scroll;
        }
        *, *:before, *:after {
            box-sizing: inherit;
        }
        body {
            margin:0;
            background: #fafafa;
        }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-standalone-preset.js"></script>
    <script>
        window.onload = function() {
            const ui = SwaggerUIBundle({
                url: '/api/v1/swagger.json',
                dom_id: '#swagger-ui',
                deepLinking: true,
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIStandalonePreset
                ],
                plugins: [
                    SwaggerUIBundle.plugins.DownloadUrl
                ],
                layout: "StandaloneLayout",
                validatorUrl: null
            });
        };
    </script>
</body>
</html>`

	c.Set("Content-Type", "text/html")
	return c.SendString(htmlContent)
}

// Serve Swagger JSON specification
func (r *FiberRouter) serveSwaggerJSON(c fiber.Ctx) error {
	// Read the generated swagger.json file
	swaggerData, err := os.ReadFile("docs/swagger.json")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Message: "Failed to load Swagger documentation",
			Error: dto.ErrorDetail{
				Code: "SWAGGER_LOAD_ERROR",
			},
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(swaggerData)
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	// Default error code
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a fiber.*Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Log the error
	log.Printf("Error %d: %v", code, err)

	// Get RequestID for tracing
	requestID := c.Locals("requestid")

	// Return JSON error response
	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// Helper functions

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// contains checks if a string contains a substring
func contains(str, substr string) bool {
	return strings.Contains(str, substr)
}

// GetRouteDocumentation returns API documentation
func GetRouteDocumentation() []map[string]any {
	return []map[string]any{
		{
			"method":      "POST",
			"path":        "/api/v1/hotels",
			"description": "Enroll a new hotel property",
			"parameters": map[string]any{
				"name":       "string (required) - Hotel name",
				"city":       "string (required) - City",
				"country":    "string (required) - ISO 3166-1 alpha-2 country code",
				"category":   "string (optional) - budget|midscale|upscale|luxury",
				"room_count": "number (required) - Total rooms",
				"base_price": "number (required) - Reference nightly rate",
				"currency":   "string (optional) - ISO 4217 code (default EUR)",
			},
		},
		{
			"method":      "GET",
			"path":        "/api/v1/hotels",
			"description": "List hotels with pagination and optional city filter",
			"parameters": map[string]any{
				"page":      "number (optional) - Page number",
				"page_size": "number (optional) - Items per page (max 100)",
				"city":      "string (optional) - Filter by city",
			},
		},
		{
			"method":      "POST",
			"path":        "/api/v1/hotels/:uuid/recommendations",
			"description": "Compute a price recommendation for a target stay date",
			"parameters": map[string]any{
				"target_date":   "string (required) - Stay date (YYYY-MM-DD)",
				"current_price": "number (optional) - Price to evaluate instead of the base price",
			},
		},
		{
			"method":      "GET",
			"path":        "/api/v1/hotels/:uuid/recommendations/calendar",
			"description": "Compute recommendations for a consecutive range of stay dates",
			"parameters": map[string]any{
				"from": "string (required) - First stay date (YYYY-MM-DD)",
				"days": "number (optional) - Number of days (1-60, default 7)",
			},
		},
		{
			"method":      "PUT",
			"path":        "/api/v1/hotels/:uuid/history",
			"description": "Create or replace one daily performance record",
			"parameters": map[string]any{
				"record": "object (required) - Daily record with date, occupancy_rate, adr, rooms_sold, total_revenue, total_costs",
			},
		},
		{
			"method":      "POST",
			"path":        "/api/v1/hotels/:uuid/history/import",
			"description": "Import a batch of daily performance records",
			"parameters": map[string]any{
				"records": "array (required) - Up to 1000 daily records",
			},
		},
		{
			"method":      "GET",
			"path":        "/api/v1/hotels/:uuid/history/summary",
			"description": "Aggregate revenue metrics over a date range",
			"parameters": map[string]any{
				"from": "string (optional) - Start date (YYYY-MM-DD)",
				"to":   "string (optional) - End date (YYYY-MM-DD)",
			},
		},
		{
			"method":      "POST",
			"path":        "/api/v1/competitors/sync",
			"description": "Scrape competitor rates for all scrape-enabled hotels",
			"parameters": map[string]any{
				"days": "number (optional) - Days ahead to scrape (1-30, default 7)",
			},
		},
		{
			"method":      "GET",
			"path":        "/api/v1/health",
			"description": "Health check endpoint",
			"parameters":  map[string]any{},
		},
	}
}
