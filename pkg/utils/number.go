package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeFloat converte um valor textual da plataforma em um número finito.
// Valores ausentes, malformados, NaN ou infinitos viram 0 — nunca
// propagamos lixo não numérico para as células do destino.
func SafeFloat(value string, decimals int) float64 {
	if value == "" {
		return 0
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(num*factor) / factor
}

// SafeCurrency aplica a política de formato seguro para valores monetários (2 casas)
func SafeCurrency(value string) float64 {
	return SafeFloat(value, 2)
}

// SafeCount aplica a política de formato seguro para contagens (sem casas decimais)
func SafeCount(value string) float64 {
	return SafeFloat(value, 0)
}
