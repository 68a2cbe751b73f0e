package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	Role       string
	Department string
}

var defaultUsers = []seedUser{
	{"فني الأجهزة", "technician@hospital.com", "0551234567", "123456", "technician", "الصيانة"},
	{"ممرضة القسم", "nurse@hospital.com", "0559876543", "123456", "nurse", "العناية المركزة"},
	{"admin", "admin@hospital.com", "0551111111", "admin", "admin", "إدارة النظام"},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding users...")

	query := `INSERT INTO users (name, email, phone, password, role, department, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (email) DO NOTHING`

	for _, u := range defaultUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, query, u.Name, u.Email, u.Phone, string(hashed), u.Role, u.Department); err != nil {
			return err
		}
	}
	return nil
}
