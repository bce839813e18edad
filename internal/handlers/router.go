package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arcmarket/arc-api/internal/services"
)

// Services bundles everything the router needs
type Services struct {
	Auth       *services.AuthService
	Collection *services.CollectionService
	NFT        *services.NFTService
	Person     *services.PersonService
	Activity   *services.ActivityService
	Hub        *Hub
}

// NewRouter builds the API route table
func NewRouter(svc Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	requireAuth := AuthMiddleware(svc.Auth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/wallet", WalletLogin(svc.Auth))

		r.Get("/search", Search(svc.Collection))

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", GetCollections(svc.Collection))
			r.Get("/top", GetTopCollections(svc.Collection))
			r.Get("/url/{url}", GetCollectionByURL(svc.Collection))
			r.Get("/{id}", GetCollection(svc.Collection))
			r.Get("/{id}/items", GetCollectionItems(svc.Collection))
			r.Get("/{id}/owners", GetCollectionOwners(svc.Collection))
			r.Get("/{id}/activity", GetCollectionActivity(svc.Activity))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", CreateCollection(svc.Collection))
				r.Put("/{id}", UpdateCollection(svc.Collection))
				r.Delete("/{id}", DeleteCollection(svc.Collection))
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", GetNFTs(svc.NFT))
			r.Get("/{collectionId}/{index}", GetNFTDetail(svc.NFT))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", CreateNFT(svc.NFT))
				r.Put("/{id}", UpdateNFT(svc.NFT))
				r.Delete("/{id}", DeleteNFT(svc.NFT))
			})
		})

		r.Route("/owners", func(r chi.Router) {
			r.Get("/", GetPersons(svc.Person))
			r.Get("/{wallet}", GetPerson(svc.Person))
			r.Get("/{wallet}/nfts", GetPersonNFTs(svc.Person))
			r.Get("/{wallet}/history", GetPersonHistory(svc.Person))
			r.Get("/{wallet}/offers", GetPersonOffers(svc.Person))
			r.Get("/{wallet}/collections", GetPersonCollections(svc.Person))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", CreatePerson(svc.Person))
				r.Put("/{wallet}", UpdatePerson(svc.Person))
			})
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", GetActivities(svc.Activity))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/list", ListForSale(svc.Activity))
				r.Post("/offer", MakeOffer(svc.Activity))
				r.Post("/collection-offer", MakeCollectionOffer(svc.Activity))
				r.Post("/approve", ApproveOffer(svc.Activity))
				r.Post("/transfer", Transfer(svc.Activity))
				r.Post("/cancel", CancelActivity(svc.Activity))
				r.Delete("/{id}", DeleteActivity(svc.Activity))
			})
		})
	})

	r.Get("/ws/market", ServeWs(svc.Hub))

	return r
}
