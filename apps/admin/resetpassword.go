package main

import (
	"context"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	sp := profile.SetProfilePassword{Email: email, Password: pwd}
	if err := sp.Validate(cli.validate); err != nil {
		return err
	}
	return cli.svc.SetPassword(context.Background(), sp)
}
