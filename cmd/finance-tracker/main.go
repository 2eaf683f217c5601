package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	database "github.com/mwielgus/finance-tracker/db"
	"github.com/mwielgus/finance-tracker/internal/auth"
	"github.com/mwielgus/finance-tracker/internal/finance/application"
	"github.com/mwielgus/finance-tracker/internal/finance/infrastructure"
	"github.com/mwielgus/finance-tracker/internal/finance/interfaces"
	"github.com/mwielgus/finance-tracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	userHandler        *user.Handler
	authService        auth.Service
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	dbService          *database.DBService
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		authHandler:        authHandler,
		userHandler:        userHandler,
		authService:        authService,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		dbService:          dbService,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) RegisterRoutes() {
	protect := s.authService.JWTAccessTokenMiddleware()

	apiRoutes := http.NewServeMux()

	// Public routes
	apiRoutes.Handle("POST /api/users/register", http.HandlerFunc(s.userHandler.HandleRegister))
	apiRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	apiRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Everything below requires a bearer token (JWT Access Token Middleware)
	apiRoutes.Handle("GET /api/users", protect(http.HandlerFunc(s.userHandler.HandleGetAllUsers)))
	apiRoutes.Handle("GET /api/users/{id}", protect(http.HandlerFunc(s.userHandler.HandleGetUserByID)))
	apiRoutes.Handle("PUT /api/users/{id}", protect(http.HandlerFunc(s.userHandler.HandleUpdateUser)))
	apiRoutes.Handle("DELETE /api/users/{id}", protect(http.HandlerFunc(s.userHandler.HandleDeleteUser)))

	apiRoutes.Handle("POST /api/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	apiRoutes.Handle("GET /api/transactions", protect(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	apiRoutes.Handle("GET /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.GetTransactionByID)))
	apiRoutes.Handle("PUT /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	apiRoutes.Handle("DELETE /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	apiRoutes.Handle("POST /api/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	apiRoutes.Handle("GET /api/categories", protect(http.HandlerFunc(s.categoryHandler.GetUserCategories)))
	apiRoutes.Handle("GET /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.GetCategoryByID)))
	apiRoutes.Handle("PUT /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	apiRoutes.Handle("DELETE /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", apiRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo, userService)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, userService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, transactionHandler, categoryHandler, dbService)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
