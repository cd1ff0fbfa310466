package router

import (
	"context"
	"net/http"
	"time"

	"unisovet-console/internal/adapters/storage/memory"
	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/assistant"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/dashboard"
	"unisovet-console/internal/domain/inventory"
	"unisovet-console/internal/domain/pets"
	"unisovet-console/internal/domain/suppliers"
	"unisovet-console/internal/middleware"
	"unisovet-console/internal/platform/logger"
	"unisovet-console/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	Logger logger.Logger

	// Store dos snapshots. Nil => em memória (testes, modo sem persistência).
	Store snapshot.Store

	// Generator do assistente. Nil => o assistente responde sempre com a
	// mensagem de indisponibilidade (credencial ausente não derruba nada).
	Generator assistant.Generator

	// Origens liberadas no CORS. Vazio => "*" (dev).
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}

	store := opts.Store
	if store == nil {
		store = snapshot.NewMemory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Hidratação das coleções: cada uma carrega do seu slot, caindo no
	// dataset inicial quando o slot não existe.
	ctx := context.Background()
	now := time.Now()

	clientsRepo := memory.NewClientsRepo(ctx, store, log, seed.Clients())
	petsRepo := memory.NewPetsRepo(ctx, store, log, seed.Pets())
	apptsRepo := memory.NewAppointmentsRepo(ctx, store, log, seed.Appointments(now))
	suppliersRepo := memory.NewSuppliersRepo(ctx, store, log, seed.Suppliers())
	inventoryRepo := memory.NewInventoryRepo(ctx, store, log, seed.Inventory())

	// Services por módulo
	clientsSvc := clients.NewService(clientsRepo)
	petsSvc := pets.NewService(petsRepo, clientsSvc)
	apptsSvc := appointments.NewService(apptsRepo, clientsSvc, petsSvc)
	suppliersSvc := suppliers.NewService(suppliersRepo)
	inventorySvc := inventory.NewService(inventoryRepo, suppliersSvc)
	dashboardSvc := dashboard.NewService(clientsRepo, petsRepo, apptsRepo)
	assistantSvc := assistant.NewService(opts.Generator, log, clientsRepo, petsRepo, apptsRepo)

	// Rotas por módulo
	clients.RegisterRoutes(r, clientsSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	suppliers.RegisterRoutes(r, suppliersSvc)
	inventory.RegisterRoutes(r, inventorySvc)
	dashboard.RegisterRoutes(r, dashboardSvc)
	assistant.RegisterRoutes(r, assistantSvc)

	return r
}
