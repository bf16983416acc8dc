package main

import (
	"log"
	"net/http"
	"os"

	"github.com/hafizianr/go-catalog-admin/app/cmd"
	"github.com/hafizianr/go-catalog-admin/app/configs"
	"github.com/hafizianr/go-catalog-admin/app/db/seeders"
	"github.com/hafizianr/go-catalog-admin/app/routes"
	"github.com/hafizianr/go-catalog-admin/app/utils/sessions"
)

func main() {

	configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	if err := seeders.EnsureSeeded(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	router := routes.NewRouter(db, sessionStore)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
