package routes

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/configs"
	"github.com/pesonapantai/go-wisata/app/handlers"
	"github.com/pesonapantai/go-wisata/app/handlers/admin"
	"github.com/pesonapantai/go-wisata/app/middlewares"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/renderer"
	"github.com/pesonapantai/go-wisata/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	beachRepo := repositories.NewBeachRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	userRepo := repositories.NewUserRepository(db)
	settingRepo := repositories.NewSiteSettingRepository(db)

	keys, err := configs.LoadSessionKeysFromEnv()
	var sessionStore sessions.SessionStore
	if err != nil {
		log.Printf("NewRouter: session keys tidak tersedia, memakai kunci sementara: %v", err)
		sessionStore = sessions.NewCookieSessionStore([]byte("dev-insecure-session-key"))
	} else {
		sessionStore = sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	}

	homeHandler := handlers.NewHomeHandler(render, beachRepo, articleRepo, serviceRepo, settingRepo)
	beachHandler := handlers.NewBeachHandler(render, beachRepo)
	articleHandler := handlers.NewArticleHandler(render, articleRepo, categoryRepo)
	shopHandler := handlers.NewShopHandler(render, productRepo, serviceRepo, categoryRepo)
	contactHandler := handlers.NewContactHandler(render, contactRepo, settingRepo, validate)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore)
	adminHandler := admin.NewAdminHandler(render, validate, beachRepo, articleRepo, categoryRepo, productRepo, serviceRepo, contactRepo)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CurrentUserMiddleware(userRepo, sessionStore))

	router.HandleFunc("/", homeHandler.Index).Methods("GET")
	router.HandleFunc("/wisata", beachHandler.List).Methods("GET")
	router.HandleFunc("/wisata/{slug}", beachHandler.Detail).Methods("GET")
	router.HandleFunc("/artikel", articleHandler.List).Methods("GET")
	router.HandleFunc("/artikel/{slug}", articleHandler.Detail).Methods("GET")
	router.HandleFunc("/toko/produk", shopHandler.Products).Methods("GET")
	router.HandleFunc("/toko/layanan", shopHandler.Services).Methods("GET")
	router.HandleFunc("/tentang", homeHandler.About).Methods("GET")
	router.HandleFunc("/kontak", contactHandler.Show).Methods("GET")
	router.HandleFunc("/kontak", contactHandler.Submit).Methods("POST")
	router.HandleFunc("/auth", authHandler.Status).Methods("GET")
	router.HandleFunc("/auth", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/auth/logout", authHandler.LogoutPost).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware)
	if configs.LoadENV.APP_ENV == "production" {
		if keys == nil || len(keys.AuthKey) < 32 {
			log.Fatalf("NewRouter: CSRF membutuhkan APP_AUTH_KEY minimal 32 byte di production: %v", err)
		}
		adminRouter.Use(csrf.Protect(keys.AuthKey[:32], csrf.Path("/admin")))
	}

	adminRouter.HandleFunc("", adminHandler.GetDashboard).Methods("GET")
	adminRouter.HandleFunc("/pantai", adminHandler.GetBeaches).Methods("GET")
	adminRouter.HandleFunc("/pantai", adminHandler.CreateBeach).Methods("POST")
	adminRouter.HandleFunc("/pantai/edit/{id}", adminHandler.EditBeach).Methods("POST")
	adminRouter.HandleFunc("/pantai/delete/{id}", adminHandler.DeleteBeach).Methods("POST", "DELETE")
	adminRouter.HandleFunc("/artikel", adminHandler.GetArticles).Methods("GET")
	adminRouter.HandleFunc("/artikel", adminHandler.CreateArticle).Methods("POST")
	adminRouter.HandleFunc("/artikel/edit/{id}", adminHandler.EditArticle).Methods("POST")
	adminRouter.HandleFunc("/artikel/delete/{id}", adminHandler.DeleteArticle).Methods("POST", "DELETE")
	adminRouter.HandleFunc("/produk", adminHandler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/produk", adminHandler.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/produk/edit/{id}", adminHandler.EditProduct).Methods("POST")
	adminRouter.HandleFunc("/produk/delete/{id}", adminHandler.DeleteProduct).Methods("POST", "DELETE")
	adminRouter.HandleFunc("/layanan", adminHandler.GetServices).Methods("GET")
	adminRouter.HandleFunc("/layanan", adminHandler.CreateService).Methods("POST")
	adminRouter.HandleFunc("/layanan/edit/{id}", adminHandler.EditService).Methods("POST")
	adminRouter.HandleFunc("/layanan/delete/{id}", adminHandler.DeleteService).Methods("POST", "DELETE")
	adminRouter.HandleFunc("/kontak", adminHandler.GetContacts).Methods("GET")
	adminRouter.HandleFunc("/kontak/read/{id}", adminHandler.MarkContactRead).Methods("POST")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusNotFound, handlers.Response{Status: "not_found", Message: "Halaman tidak ditemukan."})
	})

	return router
}
