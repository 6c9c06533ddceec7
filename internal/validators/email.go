package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checa se o domínio do e-mail resolve (MX, ou A/AAAA
// como fallback). Pega erro de digitação no cadastro antes de tentarmos
// mandar confirmação para um domínio que não existe.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
