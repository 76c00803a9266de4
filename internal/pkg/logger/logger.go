package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
	With(fields map[string]interface{}) Logger
}

// ZapLogger é a implementação concreta da interface Logger sobre zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger cria um Logger JSON (produção) no nível informado.
// Níveis desconhecidos caem para "info".
func NewLogger(level string) Logger {
	return newLogger(level, false)
}

// NewDevelopmentLogger cria um Logger com saída em console colorida.
func NewDevelopmentLogger(level string) Logger {
	return newLogger(level, true)
}

// NewNop devolve um Logger que descarta tudo (útil em testes).
func NewNop() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func newLogger(level string, development bool) Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Configuração inválida não deve derrubar o serviço.
		zl = zap.NewExample()
	}
	return &ZapLogger{sugar: zl.Sugar()}
}

// toKeysAndValues converte o mapa de campos para o formato chave/valor do zap.
func toKeysAndValues(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, toKeysAndValues(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, toKeysAndValues(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, toKeysAndValues(fields)...)
}

func (l *ZapLogger) Error(msg string, err error) {
	l.sugar.Errorw(msg, zap.Error(err))
}

// Fatal registra a mensagem e encerra o processo.
func (l *ZapLogger) Fatal(msg string, err error) {
	l.sugar.Fatalw(msg, zap.Error(err))
}

// With devolve um Logger com campos fixos (e.g., request_id, component).
func (l *ZapLogger) With(fields map[string]interface{}) Logger {
	return &ZapLogger{sugar: l.sugar.With(toKeysAndValues(fields)...)}
}

// Sync descarrega buffers pendentes; chamado no encerramento do main.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
