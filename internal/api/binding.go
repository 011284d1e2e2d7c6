package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindMessage turns a gin binding error into a message the dashboard can
// display. Field-level validation failures list the offending fields; any
// other decode failure gets a generic message.
func BindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return "Campos inválidos: " + strings.Join(parts, ", ")
	}
	return "Corpo da requisição inválido"
}
