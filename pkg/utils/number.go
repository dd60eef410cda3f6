package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMillionCopies formata vendas totais, ex: "1,234.5 million copies"
func FormatMillionCopies(f float64) string {
	return humanize.FormatFloat("#,###.#", f) + " million copies"
}

// FormatMillions formata médias e previsões, ex: "0.54 million"
func FormatMillions(f float64) string {
	return humanize.FormatFloat("#,###.##", f) + " million"
}

// FormatCount formata contagens com separador de milhar
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
