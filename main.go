package main

import (
	"github.com/dedewo882/volunteer-platform-final/config"
	"github.com/dedewo882/volunteer-platform-final/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
