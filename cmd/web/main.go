package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/harissa-games/jaipur"
	"github.com/harissa-games/jaipur/server"
	"github.com/joeshaw/envdecode"
)

type config struct {
	Port int `env:"PORT,default=8000"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	store := jaipur.NewInMemoryGameStore()
	s := server.NewServer(store)

	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), s))
}
