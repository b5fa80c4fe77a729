package main

import (
	"context"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
)

// addUser creates a profile; without isAdmin it gets the student role.
func (cli *commandLine) addUser(email, pwd string, isAdmin bool) error {
	np := profile.NewProfile{
		Email:           email,
		Role:            profile.RoleStudent,
		Password:        pwd,
		PasswordConfirm: pwd,
	}
	if isAdmin {
		np.Role = profile.RoleAdmin
	}
	if err := np.Validate(cli.validate); err != nil {
		return err
	}
	_, err := cli.svc.Create(context.Background(), np)
	return err
}
