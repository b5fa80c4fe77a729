package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	inmemdb "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database/inmem"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/testutil"
)

var profileRepo profile.Repository

func setup(t *testing.T) *commandLine {
	profileRepo = inmemdb.NewProfileRepository(inmemdb.Open())
	validate, _ := testutil.NewValidator()

	// start CLI
	return &commandLine{
		svc:      profile.NewService(profileRepo),
		validate: validate,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

// mockPasswords makes the password prompts return pwds in turn.
func mockPasswords(pwds ...string) {
	var i int
	readPasswordFunc = func(fd int) ([]byte, error) {
		if i >= len(pwds) {
			return nil, nil
		}
		i++
		return []byte(pwds[i-1]), nil
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "create", args: []string{"migrate", "create", "add_course_slug", "sql"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Equal(t, tt.wantErrStr, err.Error())
				}
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)
	pwd := "Tr1nity-Drive!"

	type extra struct {
		pwds []string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no email", args: []string{"adduser"}, wantErr: errHelp},
		{name: "no password", args: []string{"adduser", "-email", "mary@test.ke"}, wantErr: errHelp},
		{name: "mismatch", args: []string{"adduser", "-email", "mary@test.ke"}, extra: extra{pwds: []string{pwd, "other"}}, wantErr: errPasswordMismatch},
		{name: "weak password", args: []string{"adduser", "-email", "mary@test.ke"}, extra: extra{pwds: []string{"12345678", "12345678"}}, wantErrStr: "validation"},
		{name: "admin", args: []string{"adduser", "-email", "Mary@Test.ke", "-admin"}, extra: extra{pwds: []string{pwd, pwd}}},
		{name: "duplicate", args: []string{"adduser", "-email", "mary@test.ke"}, extra: extra{pwds: []string{pwd, pwd}}, wantErrStr: profile.ErrEmailExists.Error()},
		{name: "student", args: []string{"adduser", "-email", "kevin@test.ke"}, extra: extra{pwds: []string{pwd, pwd}}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)
		if extra, ok := tt.extra.(extra); ok {
			mockPasswords(extra.pwds...)
		} else {
			mockPasswords()
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr == "validation":
				_, ok := err.(validator.ValidationErrors)
				assert.True(t, ok, "error = %v", err)
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Equal(t, tt.wantErrStr, err.Error())
				}
			default:
				assert.NoError(t, err)
			}
		})
	}

	mary, err := profileRepo.GetProfileByEmail(context.Background(), "mary@test.ke")
	if assert.NoError(t, err) {
		assert.True(t, mary.IsAdmin())
		assert.NoError(t, mary.CheckPassword(pwd))
	}
	kevin, err := profileRepo.GetProfileByEmail(context.Background(), "kevin@test.ke")
	if assert.NoError(t, err) {
		assert.Equal(t, profile.RoleStudent, kevin.Role)
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)
	p := testutil.CreateProfile(t, profileRepo, "awe@test.ke", profile.RoleAdmin, "Old-Passw0rd")

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "-email", "lol@test.ke"}, wantErr: errHelp},
		{name: "profile not found", args: []string{"resetpassword", "-email", "lol@test.ke"}, extra: extra{pwd: "N3w-Passw0rd"}, wantErr: profile.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-email", p.Email}, extra: extra{pwd: "N3w-Passw0rd"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)
		if extra, ok := tt.extra.(extra); ok {
			mockPasswords(extra.pwd)
		} else {
			mockPasswords()
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			if assert.NoError(t, err) {
				refreshed, err := profileRepo.GetProfileByID(context.Background(), p.ID)
				if err != nil {
					t.Fatalf("GetProfileByID() failed, %v", err)
				}
				assert.NoError(t, refreshed.CheckPassword("N3w-Passw0rd"))
				assert.Error(t, refreshed.CheckPassword("Old-Passw0rd"))
			}
		})
	}
}
