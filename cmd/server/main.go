package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/landkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/landkeeper/internal/cryptox"
	"github.com/dmitrijs2005/landkeeper/internal/server"
	"github.com/dmitrijs2005/landkeeper/internal/server/config"
	"golang.org/x/term"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	// "server hash-password" prints an argon2id hash for admin_password_hash.
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func hashPassword() error {
	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	if len(pw) == 0 {
		return fmt.Errorf("empty password")
	}
	fmt.Println(cryptox.HashPassword(string(pw)))
	return nil
}
