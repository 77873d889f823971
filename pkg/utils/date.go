package utils

import "time"

// WeekRangeEndingAt retorna o intervalo explícito de 7 dias terminando na data informada
func WeekRangeEndingAt(end time.Time) (time.Time, time.Time) {
	return end.AddDate(0, 0, -6), end
}
