package tools

import (
	"fmt"
	"strings"
	"time"
)

// FormatDatetimeBR formata um horário no padrão brasileiro (dd/mm/aaaa hh:mm).
func FormatDatetimeBR(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatDateBR formata uma data no padrão brasileiro (dd/mm/aaaa).
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatCurrencyBRL formata centavos como moeda brasileira: R$ 1.234,56.
func FormatCurrencyBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := cents / 100
	rest := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), rest)
}

// TruncateText corta o texto em maxLen caracteres, com reticências.
func TruncateText(text string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
