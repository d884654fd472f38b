package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"chess-eval/position"
	"chess-eval/server"
)

func main() {
	var port uint
	flag.UintVar(&port, "port", server.DefaultPort, "Port to listen on")
	backend := flag.String("backend", position.Default, "Board backend ("+strings.Join(position.Backends(), ", ")+")")
	flag.Parse()
	if port == 0 || port > 65535 {
		fmt.Println("Invalid port number")
		os.Exit(1)
	}
	if _, err := position.Parse(*backend, position.StartFEN); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Starting server on :%d (backend %s)\n", port, *backend)
	app := server.NewApplication(*backend, os.Stdout)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), app); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
