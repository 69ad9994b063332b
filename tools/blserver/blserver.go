// Command blserver runs a small local HTTP service for inspecting and
// exercising the swizzle library without writing a one-off program:
// /size answers sizing queries, /plan returns the per-mip layout, and
// /convert performs an actual swizzle/deswizzle on a posted buffer.
// Structured the way god_of_war_browser's web.StartServer is:
// gorilla/mux routes wrapped in gorilla/handlers' recovery and logging
// middleware.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "127.0.0.1:8089", "address to listen on")
	flag.Parse()

	if err := startServer(addr); err != nil {
		log.Fatal(err)
	}
}

func startServer(addr string) error {
	r := mux.NewRouter()
	r.HandleFunc("/size", handleSize).Methods(http.MethodGet)
	r.HandleFunc("/plan", handlePlan).Methods(http.MethodGet)
	r.HandleFunc("/convert", handleConvert).Methods(http.MethodPost)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[blserver] listening on %s", addr)
	return http.ListenAndServe(addr, h)
}
