package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           SPY Tracker API
// @version         0.1.0
// @description     Day trading journal: trade log, game plans, checklists, and performance stats.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
