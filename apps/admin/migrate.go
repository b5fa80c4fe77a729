package main

import (
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database"
)

var gooseRunFunc = database.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	return gooseRunFunc(args[0], cli.db, args[1:]...)
}
