package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"contacts-api/config"
	_ "contacts-api/docs"
	"contacts-api/internal/handlers"
	"contacts-api/internal/repositories"
	"contacts-api/internal/services"
)

// @title Contacts API
// @version 1.0
// @description A contact directory API with search and upcoming birthday queries
// @host localhost:8000
// @BasePath /
func main() {
	// Load config
	cfg := config.NewConfig()

	// Initialize database connection
	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Create service and HTTP handler
	contactRepository := repositories.NewSQLContactRepository(db)
	contactService := services.NewContactService(contactRepository)
	contactHandler := handlers.NewContactHandler(contactService)

	router := mux.NewRouter()
	handlers.RegisterContactRoutes(router, contactHandler)

	// Configuração do Swagger UI
	router.PathPrefix("/swagger-ui/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger-ui/doc.json"),
		httpSwagger.DeepLinking(true),
	))

	router.Use(handlers.RequestLogger)

	// Configurar CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	// Aplicar middleware CORS
	handler := c.Handler(router)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: handler,
	}

	// Canal para sinais de interrupção
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Printf("Server is running on http://localhost%s\n", cfg.ServerAddr)
		fmt.Printf("Swagger UI available at: http://localhost%s/swagger-ui/\n", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-stop
	fmt.Println("\nShutting down gracefully...")

	// Criar contexto com timeout para shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Fechar servidor HTTP
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	fmt.Println("Server stopped successfully")
}
