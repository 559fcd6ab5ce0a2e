// Package main - Entry point for the forecast API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"charter-forecast/api"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	flag.Parse()

	apiServer := api.NewServer(version)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("Charter Forecast Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s/api\n", *addr)
	fmt.Println()

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
