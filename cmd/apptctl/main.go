package main

import (
	"os"

	"github.com/m04kA/SMC-AppointmentService/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
