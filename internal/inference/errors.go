package inference

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound       = errors.New("model file not found at any candidate path")
	ErrUnsupportedVersion  = errors.New("unsupported model format version")
	ErrUnknownKind         = errors.New("unknown model kind")
	ErrInvalidModel        = errors.New("invalid model definition")
	ErrFeatureMismatch     = errors.New("input does not match the model feature schema")
	ErrNoModel             = errors.New("no model loaded")
	ErrEmptyPrediction     = errors.New("model returned no prediction")
	ErrNonFinitePrediction = errors.New("model returned a non-finite prediction")
)

// LoadError indica que o arquivo do modelo existe mas não pôde ser desserializado
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InferenceError envolve qualquer falha ocorrida durante a previsão
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
