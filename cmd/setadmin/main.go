// setadmin grants or revokes the admin flag on a user identity. Run it from
// an operator machine with direct database access:
//
//	go run ./cmd/setadmin -email ops@reabilitepro.com
//	go run ./cmd/setadmin -email ops@reabilitepro.com -revoke
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"reabilitepro/config"
	"reabilitepro/database"
	userRepoPkg "reabilitepro/database/repository/user"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	revoke := flag.Bool("revoke", false, "remove the admin flag instead of granting it")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: setadmin -email <address> [-revoke]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "setadmin: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setadmin: failed to connect to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	users := userRepoPkg.NewMongoUserRepo(client.Database(cfg.DatabaseName))
	u, err := users.GetByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setadmin: lookup failed: %v\n", err)
		os.Exit(1)
	}
	if u == nil {
		fmt.Fprintf(os.Stderr, "setadmin: no user with email %s\n", *email)
		os.Exit(1)
	}

	admin := !*revoke
	if err := users.SetAdmin(ctx, u.ID, admin); err != nil {
		fmt.Fprintf(os.Stderr, "setadmin: update failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user %s (%s): admin=%v\n", u.ID, u.Email, admin)
}
