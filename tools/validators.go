package tools

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// NormalizeWhatsAppNumber valida e normaliza um número de WhatsApp para E.164
// (+5511999999999). Números sem DDI são interpretados como Brasil.
func NormalizeWhatsAppNumber(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	num, err := phonenumbers.Parse(raw, "BR")
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// ValidateCPF confere tamanho e dígitos verificadores (apenas números).
func ValidateCPF(cpf string) bool {
	cpf = strings.TrimSpace(cpf)
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}

	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos.
	allEqual := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	digit := func(upTo int) byte {
		sum := 0
		for i := 0; i < upTo; i++ {
			sum += int(cpf[i]-'0') * (upTo + 1 - i)
		}
		rest := (sum * 10) % 11
		if rest == 10 {
			rest = 0
		}
		return byte('0' + rest)
	}

	return cpf[9] == digit(9) && cpf[10] == digit(10)
}

// ValidateUF valida a sigla de estado (duas letras maiúsculas).
func ValidateUF(uf string) bool {
	re := regexp.MustCompile(`^[A-Z]{2}$`)
	return re.MatchString(uf)
}
