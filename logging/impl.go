package logging

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used throughout the module.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})

	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<name>.<subname>". It starts at this logger's level and
	// writes to the same appenders, including ones added later.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
	AddAppender(appender Appender)
	Sync() error
}

// appenderSet is shared by a logger and all of its subloggers.
type appenderSet struct {
	mu        sync.RWMutex
	appenders []Appender
}

func (s *appenderSet) add(appender Appender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appenders = append(s.appenders, appender)
}

func (s *appenderSet) snapshot() []Appender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appenders[:len(s.appenders):len(s.appenders)]
}

// fanoutCore is a zapcore.Core that hands every enabled entry to each appender of a set.
type fanoutCore struct {
	level  AtomicLevel
	inUTC  bool
	sinks  *appenderSet
	fields []zapcore.Field
}

func (c *fanoutCore) Enabled(l zapcore.Level) bool {
	return l >= c.level.Get().AsZap()
}

func (c *fanoutCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	return &clone
}

func (c *fanoutCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *fanoutCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.inUTC {
		entry.Time = entry.Time.UTC()
	}
	if len(c.fields) > 0 {
		fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	}
	var errs error
	for _, appender := range c.sinks.snapshot() {
		errs = multierr.Append(errs, appender.Write(entry, fields))
	}
	return errs
}

func (c *fanoutCore) Sync() error {
	var errs error
	for _, appender := range c.sinks.snapshot() {
		errs = multierr.Append(errs, appender.Sync())
	}
	return errs
}

type impl struct {
	name  string
	core  *fanoutCore
	sugar *zap.SugaredLogger
}

func newImpl(name string, level Level, inUTC bool, appenders ...Appender) *impl {
	return newImplOnCore(name, &fanoutCore{
		level: NewAtomicLevelAt(level),
		inUTC: inUTC,
		sinks: &appenderSet{appenders: appenders},
	})
}

// newImplOnCore skips one extra frame so that callers of the Logger methods are reported.
func newImplOnCore(name string, core *fanoutCore) *impl {
	return &impl{
		name:  name,
		core:  core,
		sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(name).Sugar(),
	}
}

func (imp *impl) Sublogger(subname string) Logger {
	name := subname
	if imp.name != "" {
		name = imp.name + "." + subname
	}
	return newImplOnCore(name, &fanoutCore{
		level: NewAtomicLevelAt(imp.GetLevel()),
		inUTC: imp.core.inUTC,
		sinks: imp.core.sinks,
	})
}

func (imp *impl) AddAppender(appender Appender) {
	imp.core.sinks.add(appender)
}

func (imp *impl) SetLevel(level Level) {
	imp.core.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.core.level.Get()
}

func (imp *impl) Sync() error {
	return imp.sugar.Sync()
}

func (imp *impl) Debug(args ...interface{}) {
	imp.sugar.Debug(args...)
}

func (imp *impl) Debugf(template string, args ...interface{}) {
	imp.sugar.Debugf(template, args...)
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Debugw(msg, keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) {
	imp.sugar.Info(args...)
}

func (imp *impl) Infof(template string, args ...interface{}) {
	imp.sugar.Infof(template, args...)
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.sugar.Infow(msg, keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) {
	imp.sugar.Warn(args...)
}

func (imp *impl) Warnf(template string, args ...interface{}) {
	imp.sugar.Warnf(template, args...)
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Warnw(msg, keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) {
	imp.sugar.Error(args...)
}

func (imp *impl) Errorf(template string, args ...interface{}) {
	imp.sugar.Errorf(template, args...)
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Errorw(msg, keysAndValues...)
}
