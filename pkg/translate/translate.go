package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/backend"
	"github.com/angeloszaimis/libtranslate/internal/catalog"
	"github.com/angeloszaimis/libtranslate/internal/dispatcher"
	"github.com/angeloszaimis/libtranslate/internal/provider"
)

const (
	KindDetector   = "detector"
	KindTranslator = "translator"
)

// BackendInfo describes the state of one registered backend.
type BackendInfo struct {
	Name              string        `json:"name"`
	StaticWeight      uint64        `json:"static_weight"`
	EffectiveWeight   uint64        `json:"effective_weight"`
	Status            string        `json:"status"`
	RetryIn           time.Duration `json:"retry_in"`
	TotalCalls        uint64        `json:"total_calls"`
	SuccessfulCalls   uint64        `json:"successful_calls"`
	LastError         string        `json:"last_error,omitempty"`
	ActiveConnections int           `json:"active_connections"`
	AvgResponse       time.Duration `json:"avg_response"`
}

// Detector identifies the language of a text.
type Detector struct {
	dispatcher *dispatcher.Dispatcher[provider.Detector]
}

func NewDetector(opts ...Option) (*Detector, error) {
	s := newSettings(opts)

	d, err := build(KindDetector, catalog.Detectors(s.client), s)
	if err != nil {
		return nil, err
	}
	return &Detector{dispatcher: d}, nil
}

func (d *Detector) Detect(ctx context.Context, text string) (Language, error) {
	return dispatcher.Call(ctx, d.dispatcher, func(ctx context.Context, api provider.Detector) (Language, error) {
		return api.Detect(ctx, text)
	})
}

// LastError returns the last failure of the named backend, or nil.
func (d *Detector) LastError(name string) error {
	return d.dispatcher.LastError(name)
}

func (d *Detector) Backends() []BackendInfo {
	return infos(d.dispatcher.Snapshot())
}

func (d *Detector) Kind() string {
	return d.dispatcher.Kind()
}

// Snapshot returns the raw backend state for monitoring.
func (d *Detector) Snapshot() []backend.Snapshot {
	return d.dispatcher.Snapshot()
}

// Translator translates text between languages.
type Translator struct {
	dispatcher *dispatcher.Dispatcher[provider.Translator]
}

func NewTranslator(opts ...Option) (*Translator, error) {
	s := newSettings(opts)

	d, err := build(KindTranslator, catalog.Translators(s.client), s)
	if err != nil {
		return nil, err
	}
	return &Translator{dispatcher: d}, nil
}

// Translate translates text from source, which may be Auto, into target.
func (t *Translator) Translate(ctx context.Context, text string, source, target Language) (Translation, error) {
	switch {
	case !source.IsKnown():
		return Translation{}, fmt.Errorf("%w: source %d", ErrUnknownLanguage, source)
	case !target.IsKnown():
		return Translation{}, fmt.Errorf("%w: target %d", ErrUnknownLanguage, target)
	case target == Auto:
		return Translation{}, ErrTargetIsAuto
	case target == source:
		return Translation{}, ErrTargetEqualsSource
	}

	return dispatcher.Call(ctx, t.dispatcher, func(ctx context.Context, api provider.Translator) (Translation, error) {
		return api.Translate(ctx, text, source, target)
	})
}

// LastError returns the last failure of the named backend, or nil.
func (t *Translator) LastError(name string) error {
	return t.dispatcher.LastError(name)
}

func (t *Translator) Backends() []BackendInfo {
	return infos(t.dispatcher.Snapshot())
}

func (t *Translator) Kind() string {
	return t.dispatcher.Kind()
}

// Snapshot returns the raw backend state for monitoring.
func (t *Translator) Snapshot() []backend.Snapshot {
	return t.dispatcher.Snapshot()
}

func build[T any](kind string, cat catalog.Catalog[T], s settings) (*dispatcher.Dispatcher[T], error) {
	if s.strategy.all {
		return dispatcher.Default(kind, cat, s.dispatcherOptions()...)
	}
	return dispatcher.New(kind, cat, s.strategy.names, s.dispatcherOptions()...)
}

func infos(snaps []backend.Snapshot) []BackendInfo {
	out := make([]BackendInfo, len(snaps))
	for i, snap := range snaps {
		info := BackendInfo{
			Name:              snap.Name,
			StaticWeight:      snap.StaticWeight,
			EffectiveWeight:   snap.EffectiveWeight,
			Status:            snap.Health.Status.String(),
			RetryIn:           snap.RetryIn,
			TotalCalls:        snap.Health.TotalCalls,
			SuccessfulCalls:   snap.Health.SuccessfulCalls,
			ActiveConnections: snap.ActiveConnections,
			AvgResponse:       snap.EWMAResponseTime,
		}
		if snap.Health.LastError != nil {
			info.LastError = snap.Health.LastError.Error()
		}
		out[i] = info
	}
	return out
}
