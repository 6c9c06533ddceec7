package httperr

import "errors"

// BusinessError é uma violação de regra de negócio identificada pelo Code
// (ex.: "slot_conflict", "closed_day"). Os handlers traduzem o código para
// o status HTTP e a mensagem em português; os use cases só conhecem o código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reporta se err carrega uma BusinessError com o código dado,
// mesmo embrulhada.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
