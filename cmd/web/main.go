package main

import (
	"tripplanner_backend/internal/app"
	"tripplanner_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
