package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	logsvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/logger"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database"
	sqlxrepos "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal("creating database", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		db:       db.DB,
		svc:      profile.NewService(sqlxrepos.NewProfileRepository(db)),
		validate: validate,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}
