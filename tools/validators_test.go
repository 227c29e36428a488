package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("joao@example.com"))
	assert.True(t, ValidateEmail("maria.silva+tag@sub.dominio.com.br"))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("sem-arroba.com"))
	assert.False(t, ValidateEmail("a@b"))
}

func TestNormalizeWhatsAppNumber(t *testing.T) {
	// celular SP com DDI, sem DDI e com formatação
	for _, raw := range []string{
		"+5511987654321",
		"5511987654321",
		"11987654321",
		"(11) 98765-4321",
	} {
		got, ok := NormalizeWhatsAppNumber(raw)
		assert.True(t, ok, "esperava válido: %q", raw)
		assert.Equal(t, "+5511987654321", got)
	}

	for _, raw := range []string{"", "abc", "119", "11 9876"} {
		_, ok := NormalizeWhatsAppNumber(raw)
		assert.False(t, ok, "esperava inválido: %q", raw)
	}
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("52998224725"))
	assert.True(t, ValidateCPF("11144477735"))

	assert.False(t, ValidateCPF(""))
	assert.False(t, ValidateCPF("529.982.247-25")) // só dígitos
	assert.False(t, ValidateCPF("52998224724"))    // dígito verificador errado
	assert.False(t, ValidateCPF("11111111111"))    // todos iguais
	assert.False(t, ValidateCPF("123"))
}

func TestValidateUF(t *testing.T) {
	assert.True(t, ValidateUF("SP"))
	assert.True(t, ValidateUF("RJ"))
	assert.False(t, ValidateUF("sp"))
	assert.False(t, ValidateUF("SPO"))
	assert.False(t, ValidateUF(""))
}
