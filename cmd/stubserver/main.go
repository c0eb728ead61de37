// stubserver serves a scripted game so the client can be tried without
// the real server.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"twenty48/internal/stubserver"
)

func main() {
	addr := flag.String("addr", ":8048", "listen address")
	scriptPath := flag.String("script", "", "YAML script of canned game states (default: embedded demo)")
	flag.Parse()

	script := stubserver.DefaultScript()
	if *scriptPath != "" {
		loaded, err := stubserver.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		script = loaded
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", stubserver.New(script).Router())

	log.Printf("stub game server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal(err)
	}
}
