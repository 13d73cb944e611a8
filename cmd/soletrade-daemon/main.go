package main

import (
	"fmt"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/workers/daemons"
)

func main() {
	app, err := config.InitializeApp()
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	worker := daemons.NewCronJob(app)
	worker.Start()
}
