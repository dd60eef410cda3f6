package inference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FormatVersion é a única versão de arquivo de modelo suportada
const FormatVersion = 1

const defaultRemoteTimeout = 10 * time.Second

// DefaultCandidatePaths: primeiro a pasta model/, depois o diretório de trabalho
var DefaultCandidatePaths = []string{
	"model/video_game_sales.json",
	"video_game_sales.json",
}

type modelFile struct {
	FormatVersion int       `json:"format_version"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Features      []string  `json:"features"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`
	Endpoint      string    `json:"endpoint"`
}

// Loader localiza e desserializa o modelo uma única vez. Falhas são devolvidas, nunca disparadas.
type Loader struct {
	candidates    []string
	remoteTimeout time.Duration

	once  sync.Once
	model Predictor
	err   error
}

type LoaderOption func(*Loader)

// WithRemoteTimeout define o timeout das chamadas ao serviço de inferência remoto
func WithRemoteTimeout(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		if timeout > 0 {
			l.remoteTimeout = timeout
		}
	}
}

func NewLoader(candidates []string, opts ...LoaderOption) *Loader {
	if len(candidates) == 0 {
		candidates = DefaultCandidatePaths
	}

	l := &Loader{
		candidates:    candidates,
		remoteTimeout: defaultRemoteTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load retorna o modelo ou o erro descritivo da primeira tentativa de carga
func (l *Loader) Load() (Predictor, error) {
	l.once.Do(func() {
		l.model, l.err = l.load()
		if l.err != nil {
			log.L.WithError(l.err).Warn("model: unavailable, predictions disabled")
			return
		}

		info := l.model.Info()
		log.L.WithFields(log.Fields{
			"model_path": info.Path,
			"model_kind": info.Kind,
			"model_name": info.Name,
		}).Info("model: loaded")
	})

	return l.model, l.err
}

func (l *Loader) load() (Predictor, error) {
	path, ok := FindModelPath(l.candidates)
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrModelNotFound, strings.Join(l.candidates, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	model, err := Decode(path, data, l.remoteTimeout)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return model, nil
}

// FindModelPath retorna o primeiro candidato existente
func FindModelPath(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.L.WithError(err).Warnf("model: cannot stat %s", candidate)
		}
	}
	return "", false
}

// Decode desserializa um arquivo de modelo
func Decode(path string, data []byte, remoteTimeout time.Duration) (Predictor, error) {
	var def modelFile
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	if def.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w %d (expected %d)", ErrUnsupportedVersion, def.FormatVersion, FormatVersion)
	}

	info := ModelInfo{
		Name: def.Name,
		Kind: def.Kind,
		Path: path,
	}
	if info.Name == "" {
		info.Name = def.Kind
	}

	switch def.Kind {
	case KindLinear:
		return newLinearModel(info, def)
	case KindRemote:
		return newRemoteModel(info, def, remoteTimeout)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, def.Kind)
	}
}
