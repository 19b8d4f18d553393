package main

import (
	"fmt"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	r := routes.SetupRouter()
	// running
	r.Listen(":3000")
}
