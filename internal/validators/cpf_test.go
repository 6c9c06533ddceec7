package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},

		// dígito verificador errado
		{"529.982.247-24", false},
		{"52998224726", false},

		// sequências repetidas passam no checksum mas são inválidas
		{"111.111.111-11", false},
		{"00000000000", false},

		// tamanho errado
		{"5299822472", false},
		{"529982247250", false},
		{"", false},

		// lixo não numérico sobra curto depois do strip
		{"abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCPFValid(tt.cpf), "cpf %q", tt.cpf)
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizeCPF("52998224725"))
	assert.Equal(t, "", NormalizeCPF("---"))
}
