package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data "2006-01-02" no fuso local do servidor
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("data vazia")
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// MustParseDate é usado em testes e defaults
func MustParseDate(dateStr string) time.Time {
	date, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return *date
}
