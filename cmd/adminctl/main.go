// adminctl provisions admin accounts. There is deliberately no
// registration endpoint; admins are created out of band with this tool.
//
//	adminctl create-admin --username alice --email alice@example.com --password ...
//	adminctl check-password --username alice --password ...
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/wedsnap/wedsnap-backend/internal/config"
	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/internal/repository"
	"github.com/wedsnap/wedsnap-backend/pkg/bcrypt"
	"github.com/wedsnap/wedsnap-backend/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		fatal("failed to connect to database: %v", err)
	}
	adminRepo := repository.NewAdminRepository(db)

	switch os.Args[1] {
	case "create-admin":
		createAdmin(adminRepo, os.Args[2:])
	case "check-password":
		checkPassword(adminRepo, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func createAdmin(adminRepo *repository.AdminRepository, args []string) {
	flags := flag.NewFlagSet("create-admin", flag.ExitOnError)
	username := flags.String("username", "", "admin username (unique)")
	email := flags.String("email", "", "admin email")
	password := flags.String("password", "", "admin password")
	flags.Parse(args)

	if *username == "" || *password == "" {
		fatal("create-admin requires --username and --password")
	}

	hash, err := bcrypt.HashPassword(*password)
	if err != nil {
		fatal("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
	}
	if err := adminRepo.Create(admin); err != nil {
		fatal("failed to create admin: %v", err)
	}

	fmt.Printf("created admin %q (id %d)\n", admin.Username, admin.ID)
}

func checkPassword(adminRepo *repository.AdminRepository, args []string) {
	flags := flag.NewFlagSet("check-password", flag.ExitOnError)
	username := flags.String("username", "", "admin username")
	password := flags.String("password", "", "password to verify")
	flags.Parse(args)

	if *username == "" || *password == "" {
		fatal("check-password requires --username and --password")
	}

	admin, err := adminRepo.GetByUsername(*username)
	if err != nil {
		fatal("admin %q not found", *username)
	}

	if err := bcrypt.ComparePassword(admin.PasswordHash, *password); err != nil {
		fmt.Println("password does not match")
		os.Exit(1)
	}
	fmt.Println("password ok")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: adminctl <create-admin|check-password> [flags]")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
