package req

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode читает JSON тело запроса в структуру T и валидирует ее по validate-тегам
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, fmt.Errorf("invalid json body: %w", err)
	}

	err = validate.Struct(payload)
	if err != nil {
		return payload, fmt.Errorf("validation failed: %w", err)
	}

	return payload, nil
}
