package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// ShareToken builds the public link token for a trip: "<trip id>-<millis base36>".
func ShareToken(tripID uuid.UUID, at time.Time) string {
	return tripID.String() + "-" + strings.ToLower(strconv.FormatInt(at.UnixMilli(), 36))
}
