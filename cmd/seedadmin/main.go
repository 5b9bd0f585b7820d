// Command seedadmin creates or updates the admin principal. Credentials are
// seeded out of band: the API itself never writes to admin_users.
//
//	seedadmin -db ddc.db -username admin -password 's3cret'
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/ddcrdc/content-api/internal/infrastructure/db/sqlite"
)

func main() {
	dbPath := flag.String("db", "ddc.db", "path to the SQLite database")
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (stored as a SHA-256 hex digest)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "seedadmin: -username and -password are required")
		flag.Usage()
		os.Exit(2)
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seedadmin: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "seedadmin: %v\n", err)
		os.Exit(1)
	}

	sum := sha256.Sum256([]byte(*password))
	digest := hex.EncodeToString(sum[:])

	res, err := db.Exec(
		`INSERT INTO admin_users (username, password_hash) VALUES (?, ?)
		 ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash`,
		*username, digest,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seedadmin: %v\n", err)
		os.Exit(1)
	}

	id, _ := res.LastInsertId()
	fmt.Printf("admin user %q ready (id %d)\n", *username, id)
}
