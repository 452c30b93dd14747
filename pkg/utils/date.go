package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout é o formato fixo das datas no arquivo de vendas
const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, fmt.Errorf("empty date")
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
