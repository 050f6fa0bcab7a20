package entity

import (
	"fmt"
	"time"
)

// FormatLocalStamp desloca o instante em offsetHours horas e escreve o
// horário de parede com o offset explícito (ex: 2025-11-13T11:20:00-06:00).
// É aritmética pura: não consulta tz database e ignora horário de verão.
func FormatLocalStamp(isoUTC string, offsetHours int) (string, error) {
	instant, err := time.Parse(time.RFC3339Nano, isoUTC)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: %w", isoUTC, err)
	}

	local := instant.UTC().Add(time.Duration(offsetHours) * time.Hour)

	sign := "+"
	magnitude := offsetHours
	if offsetHours < 0 {
		sign = "-"
		magnitude = -offsetHours
	}

	return fmt.Sprintf("%s%s%02d:00", local.Format("2006-01-02T15:04:05"), sign, magnitude), nil
}
