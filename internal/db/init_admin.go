package db

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// InitAdmin makes sure the admin account from the environment exists so the
// web layer is never locked out after a fresh install.
func InitAdmin(database *Database) {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" {
		return
	}

	var count int
	err := database.ExecQueryRow(context.Background(),
		"SELECT COUNT(*) FROM usuarios WHERE nombre_usuario = $1", adminUsername).Scan(&count)
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	_, err = database.Exec(context.Background(),
		"INSERT INTO usuarios (nombre_usuario, password_hash, rol) VALUES ($1, $2, 'admin')",
		adminUsername, string(hashed))
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Admin user created successfully.")
}
