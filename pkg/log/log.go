package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger expõe o subconjunto de logrus usado pelos serviços do dashboard
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda no contexto o id gerado por requisição
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = string(CorrelationIDKey)

// Campos que continuam visíveis em desenvolvimento. Os de filtro usam o prefixo filter_.
var developmentFields = map[string]struct{}{
	correlationIDField:     {},
	"method":               {},
	"path":                 {},
	"status_code":          {},
	"duration_ms":          {},
	"error":                {},
	"source":               {},
	"records":              {},
	"rows_read":            {},
	"dropped_missing_year": {},
	"dropped_bad_sales":    {},
	"malformed_rows":       {},
	"prediction":           {},
	"model_path":           {},
	"model_kind":           {},
	"model_name":           {},
	"prediction_id":        {},
}

type entryLogger struct {
	entry *logrus.Entry
	dev   bool
}

// L é o logger global, sem campos
var L Logger = newEntryLogger(logrus.StandardLogger())

func newEntryLogger(base *logrus.Logger) *entryLogger {
	return &entryLogger{entry: logrus.NewEntry(base), dev: IsDevelopment()}
}

// IsDevelopment considera APP_ENV vazio como desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

// Configure aplica formato e nível ao logger padrão. Nível inválido cai para info e é devolvido como false.
func Configure(level string) (logrus.Level, bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	ok := err == nil
	if !ok {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	L = newEntryLogger(logrus.StandardLogger())
	return parsed, ok
}

// SetupTestLogger deixa a saída compacta e em debug para os testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)
	L = newEntryLogger(logrus.StandardLogger())
}

func (l *entryLogger) keeps(key string) bool {
	if !l.dev {
		return true
	}
	if _, ok := developmentFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "filter_")
}

func (l *entryLogger) with(entry *logrus.Entry) Logger {
	return &entryLogger{entry: entry, dev: l.dev}
}

func (l *entryLogger) WithField(key string, value interface{}) Logger {
	if !l.keeps(key) {
		return l
	}
	return l.with(l.entry.WithField(key, value))
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if l.keeps(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return l.with(l.entry.WithFields(kept))
}

func (l *entryLogger) WithError(err error) Logger {
	return l.with(l.entry.WithError(err))
}

// WithContext anexa o correlation id, quando presente
func (l *entryLogger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func (l *entryLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *entryLogger) Info(args ...interface{})  { l.entry.Info(args...) }
func (l *entryLogger) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l *entryLogger) Error(args ...interface{}) { l.entry.Error(args...) }
func (l *entryLogger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

func (l *entryLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *entryLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithCorrelationID gera um uuid e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

// GetCorrelationID devolve "" quando o contexto não tem id
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// ForContext é o atalho usado pelos handlers e serviços
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
