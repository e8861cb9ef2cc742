package main

import (
	"flag"

	"powerdesk.app/configs"
	"powerdesk.app/configs/configslog"
	"powerdesk.app/database"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.SLog.Fatalf("configuration error: %v", err)
	}
	defer configslog.Sync()

	db := configs.InitDatabase(cfg)

	database.Initialize(db, *migrateFlag, *seedFlag)
}
