// Command parcelmate-token issues identity tokens the way the identity
// provider does, for local development.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nakamauwu/parcelmate/auth"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type flags struct {
	TokenKey string        `ff:"long: token-key, default: supersecretkeyyoushouldnotcommit, usage: 32 bytes long key to sign identity tokens"`
	TokenTTL time.Duration `ff:"long: token-ttl, default: 336h, usage: Lifetime of the token"`
	UserID   string        `ff:"long: user-id, usage: UUID of the user"`
	Username string        `ff:"long: username, usage: Display name of the user"`
	Email    string        `ff:"long: email, usage: Email of the user"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var f flags
	fs := ff.NewFlagSetFrom("parcelmate-token", &f)
	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("PARCELMATE"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		return nil
	}

	if err != nil {
		return err
	}

	user := types.User{ID: f.UserID, Username: f.Username, Email: f.Email}
	if !user.Valid() {
		return errors.New("a v4 UUID user id and a username are required")
	}

	codec, err := auth.NewCodec(f.TokenKey, f.TokenTTL)
	if err != nil {
		return err
	}

	token, err := codec.Issue(user)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
