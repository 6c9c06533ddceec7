package validators

import "strings"

// IsCPFValid confere os dois dígitos verificadores do CPF. Aceita com ou
// sem pontuação.
func IsCPFValid(cpf string) bool {
	digits := strip(cpf)
	if len(digits) != 11 {
		return false
	}

	// sequências repetidas passam no checksum mas são inválidas
	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	if checkDigit(digits, 10) != int(digits[10]-'0') {
		return false
	}

	return true
}

// NormalizeCPF remove pontuação, deixando só os 11 dígitos.
func NormalizeCPF(cpf string) string {
	return strip(cpf)
}

func strip(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
