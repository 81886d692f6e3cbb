package utils

import (
	"fmt"
	"os"
	"time"

	"explorecamp/src/types"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, userId uint, role types.ActorRole) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userId),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseDate reads a wire-format calendar date and pins it to UTC midnight so
// that range arithmetic and the (product, date) unique index behave.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(types.DATE_FORMAT, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Today is the caller-clock date at UTC midnight. Same-day check-in is valid,
// so comparisons against it are strict.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DatesIn expands a half-open [from, to) range into its calendar days.
func DatesIn(from, to time.Time) []time.Time {
	var dates []time.Time
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
