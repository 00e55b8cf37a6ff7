package main

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"invoicer/models"
)

var (
	errEmailTaken         = errors.New("user with this email already exists")
	errInvalidCredentials = errors.New("invalid credentials")
	errInactiveUser       = errors.New("user account is inactive")
	errPasswordTooShort   = errors.New("password too short (min 6)")
)

// RegisterUser creates a user with a bcrypt-hashed password. Defaults the
// role set to ROLE_USER when none is supplied.
func RegisterUser(email, password, name string, roles []string) (models.User, error) {
	email = strings.TrimSpace(email)
	if len(password) < 6 { // basic password policy
		return models.User{}, errPasswordTooShort
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return models.User{}, errEmailTaken
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	if len(roles) == 0 {
		roles = []string{"ROLE_USER"}
	}
	user := models.User{
		Email:          email,
		Name:           name,
		HashedPassword: hashedPassword,
		Roles:          roles,
		Active:         true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return models.User{}, errEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies credentials, rejects inactive accounts and stamps
// the last login time.
func Authenticate(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, errInvalidCredentials
	}
	if !user.Active {
		return models.User{}, errInactiveUser
	}
	now := time.Now()
	user.LastLoginAt = &now
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login_at", now).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
