package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ProSocialApp/api-estudio/internal/auth"
	"github.com/ProSocialApp/api-estudio/internal/catalogo"
	"github.com/ProSocialApp/api-estudio/internal/comentario"
	"github.com/ProSocialApp/api-estudio/internal/condicioncomercial"
	"github.com/ProSocialApp/api-estudio/internal/configuracion"
	"github.com/ProSocialApp/api-estudio/internal/estudio"
	"github.com/ProSocialApp/api-estudio/internal/metodopago"
	"github.com/ProSocialApp/api-estudio/internal/negociacion"
	"github.com/ProSocialApp/api-estudio/internal/paquete"
	"github.com/ProSocialApp/api-estudio/internal/usuario"
	"github.com/ProSocialApp/api-estudio/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró .env, se usan las variables de entorno")
	}

	if err := auth.CargarSecreto(); err != nil {
		log.Fatal(err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Error al conectar a la base:", err)
	}

	// AutoMigrate para todos los modelos
	if err := database.AutoMigrate(
		&estudio.Estudio{},
		&usuario.Usuario{},
		&configuracion.ConfiguracionPrecios{},
		&catalogo.ItemCatalogo{},
		&metodopago.MetodoPago{},
		&condicioncomercial.CondicionComercial{},
		&paquete.Paquete{},
		&paquete.ServicioPaquete{},
		&negociacion.Negociacion{},
		&comentario.Comentario{},
	); err != nil {
		log.Fatal("Error en el AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	estudioHandler := estudio.NewHandler(database)
	configuracionHandler := configuracion.NewHandler(database)
	catalogoHandler := catalogo.NewHandler(database)
	metodoPagoHandler := metodopago.NewHandler(database)
	condicionHandler := condicioncomercial.NewHandler(database)
	paqueteHandler := paquete.NewHandler(database)
	negociacionHandler := negociacion.NewHandler(database)
	comentarioHandler := comentario.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Ruta pública
	r.HandleFunc("/usuarios/login", usuarioHandler.Login).Methods("POST")

	// Todo lo demás requiere token
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacion)

	// Rutas de usuarios
	api.HandleFunc("/usuarios", usuarioHandler.Crear).Methods("POST")
	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Eliminar).Methods("DELETE")

	// Rutas de estudios
	api.HandleFunc("/estudios/me", estudioHandler.Me).Methods("GET")
	api.HandleFunc("/estudios/{id}", estudioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/estudios/{id}", estudioHandler.Actualizar).Methods("PUT")

	// Configuración de precios del estudio
	api.HandleFunc("/estudios/{id}/configuracion", configuracionHandler.Obtener).Methods("GET")
	api.HandleFunc("/estudios/{id}/configuracion", configuracionHandler.Actualizar).Methods("PUT")

	// Catálogo de servicios y productos
	api.HandleFunc("/estudios/{id}/catalogo", catalogoHandler.Crear).Methods("POST")
	api.HandleFunc("/estudios/{id}/catalogo", catalogoHandler.Listar).Methods("GET")
	api.HandleFunc("/estudios/{id}/catalogo/{itemId}", catalogoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/estudios/{id}/catalogo/{itemId}", catalogoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/estudios/{id}/catalogo/{itemId}", catalogoHandler.Eliminar).Methods("DELETE")

	// Métodos de pago
	api.HandleFunc("/estudios/{id}/metodos-pago", metodoPagoHandler.Crear).Methods("POST")
	api.HandleFunc("/estudios/{id}/metodos-pago", metodoPagoHandler.Listar).Methods("GET")
	api.HandleFunc("/estudios/{id}/metodos-pago/{metodoId}", metodoPagoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/estudios/{id}/metodos-pago/{metodoId}", metodoPagoHandler.Eliminar).Methods("DELETE")

	// Condiciones comerciales
	api.HandleFunc("/estudios/{id}/condiciones", condicionHandler.Crear).Methods("POST")
	api.HandleFunc("/estudios/{id}/condiciones", condicionHandler.Listar).Methods("GET")
	api.HandleFunc("/estudios/{id}/condiciones/{condId}", condicionHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/estudios/{id}/condiciones/{condId}", condicionHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/estudios/{id}/condiciones/{condId}", condicionHandler.Eliminar).Methods("DELETE")

	// Paquetes y cotizaciones
	api.HandleFunc("/estudios/{id}/paquetes/cotizar", paqueteHandler.Cotizar).Methods("POST")
	api.HandleFunc("/estudios/{id}/paquetes", paqueteHandler.Crear).Methods("POST")
	api.HandleFunc("/estudios/{id}/paquetes", paqueteHandler.Listar).Methods("GET")
	api.HandleFunc("/estudios/{id}/paquetes/{pid}", paqueteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/estudios/{id}/paquetes/{pid}", paqueteHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/estudios/{id}/paquetes/{pid}", paqueteHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/estudios/{id}/paquetes/{pid}/cotizacion", paqueteHandler.CotizarYGuardar).Methods("POST")

	// Tablero de negociaciones
	api.HandleFunc("/negociaciones", negociacionHandler.Crear).Methods("POST")
	api.HandleFunc("/negociaciones", negociacionHandler.Listar).Methods("GET")
	api.HandleFunc("/negociaciones/{id}", negociacionHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/negociaciones/{id}", negociacionHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/negociaciones/{id}", negociacionHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/negociaciones/{id}/mover", negociacionHandler.Mover).Methods("PATCH")

	// Comentarios de negociaciones
	api.HandleFunc("/negociaciones/{id}/comentarios", comentarioHandler.Crear).Methods("POST")
	api.HandleFunc("/negociaciones/{id}/comentarios", comentarioHandler.ListarPorNegociacion).Methods("GET")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Eliminar).Methods("DELETE")

	// Rutas de administración (back-office)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/estudios", estudioHandler.Crear).Methods("POST")
	admin.HandleFunc("/estudios", estudioHandler.Listar).Methods("GET")
	admin.HandleFunc("/estudios/{id}", estudioHandler.Eliminar).Methods("DELETE")
	admin.HandleFunc("/usuarios/{id}/restablecer-contrasena", usuarioHandler.RestablecerContrasena).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor corriendo en http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
