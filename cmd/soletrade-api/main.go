package main

import (
	"fmt"
	"os"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/routes"
)

func main() {
	app, err := config.InitializeApp()
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter(app)

	if err := r.Listen(":" + port); err != nil {
		config.Logger.Fatalf("server stopped: %v", err)
	}
}
