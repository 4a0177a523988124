package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/google/uuid"

	"eventadmin/internal/auth"
	"eventadmin/internal/config"
	"eventadmin/internal/db"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// Provisioning is the only way accounts come into existence; the portal has
// no self-registration. The initial password is meant to be rotated on first
// login (last_password_change stays NULL until then).
func main() {
	email := flag.String("email", "", "email address of the new user (required)")
	password := flag.String("password", "", "initial password; random when empty")
	roles := flag.String("roles", "", "comma-separated roles (EVENT_EDITOR, INFO_SCREEN_EDITOR, GLOBAL_ADMIN)")
	organizer := flag.String("organizer", "", "name of a new organizer to create and assign")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	roleList, err := parseRoles(*roles)
	if err != nil {
		log.Fatalf("invalid roles: %v", err)
	}

	initialPassword := *password
	if initialPassword == "" {
		initialPassword = uuid.New().String()
	}

	cfg := config.Load()
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Organizer{},
		&model.User{},
		&model.UserRole{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	organizers := repository.NewOrganizerRepository(gormDB)

	salt, err := auth.GenerateSalt()
	if err != nil {
		log.Fatalf("Failed to generate salt: %v", err)
	}

	user := &model.User{
		Email:        *email,
		Salt:         salt,
		PasswordHash: auth.DerivePassword(initialPassword, salt),
	}

	if *organizer != "" {
		org := &model.Organizer{Name: *organizer}
		if err := organizers.Create(ctx, org); err != nil {
			log.Fatalf("Failed to create organizer: %v", err)
		}
		user.OrganizerID = &org.ID
		log.Printf("Created organizer %q (id %d)", org.Name, org.ID)
	}

	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	for _, role := range roleList {
		if err := users.AddRole(ctx, user.ID, role); err != nil {
			log.Fatalf("Failed to assign role %s: %v", role, err)
		}
	}

	log.Printf("Created user %s (id %d) with roles %v", user.Email, user.ID, roleList)
	if *password == "" {
		log.Printf("Initial password: %s", initialPassword)
	}
}

func parseRoles(s string) ([]model.Role, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	roles := make([]model.Role, 0, len(parts))
	for _, part := range parts {
		role := model.Role(strings.ToUpper(strings.TrimSpace(part)))
		if !role.Valid() {
			return nil, &invalidRoleError{role}
		}
		roles = append(roles, role)
	}
	return roles, nil
}

type invalidRoleError struct {
	role model.Role
}

func (e *invalidRoleError) Error() string {
	return "unknown role: " + string(e.role)
}
