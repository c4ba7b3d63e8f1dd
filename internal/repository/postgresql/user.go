package postgresql

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/centrominero/gil/internal/db"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO usuarios (nombre_usuario, password_hash, rol) VALUES ($1, $2, $3)",
		username, string(hashedPassword), role)
	return err
}

func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password_hash FROM usuarios WHERE nombre_usuario = $1", username).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
