package main

import (
	"io"
	"log"
	"os"

	"storemgr/internal/config"
	"storemgr/internal/http/handlers"
	"storemgr/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := handlers.NewApp(handlers.NewDeps(db))

	log.Fatal(app.Listen(":" + cfg.Port))
}
