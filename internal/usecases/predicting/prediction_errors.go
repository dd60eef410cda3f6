package predicting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid prediction request")
	ErrModelUnavailable = errors.New("model unavailable")
)

// PredictionError é exibido no lugar do resultado quando o modelo falha
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("error while running prediction: %v", e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}
