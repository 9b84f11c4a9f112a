package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/libtranslate/internal/handler"
	"github.com/angeloszaimis/libtranslate/pkg/translate"
)

type fakeDetector struct {
	lang translate.Language
	err  error
	text string
}

func (f *fakeDetector) Detect(_ context.Context, text string) (translate.Language, error) {
	f.text = text
	return f.lang, f.err
}

func (f *fakeDetector) Backends() []translate.BackendInfo {
	return []translate.BackendInfo{{Name: translate.TranslateExtensions, Status: "READY"}}
}

type fakeTranslator struct {
	err            error
	source, target translate.Language
}

func (f *fakeTranslator) Translate(_ context.Context, text string, source, target translate.Language) (translate.Translation, error) {
	f.source, f.target = source, target
	if f.err != nil {
		return translate.Translation{}, f.err
	}
	return translate.Translation{Source: translate.English, Target: target, Text: "[" + text + "]"}, nil
}

func (f *fakeTranslator) Backends() []translate.BackendInfo {
	return []translate.BackendInfo{{Name: translate.MobileTranslate, Status: "BLOCKED(1)"}}
}

func decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
	return body
}

var _ = Describe("Handler", func() {
	var (
		h   *handler.TranslateHandler
		det *fakeDetector
		tr  *fakeTranslator
		rec *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		det = &fakeDetector{lang: translate.English}
		tr = &fakeTranslator{}
		h = handler.NewTranslateHandler(log, det, tr)
		rec = httptest.NewRecorder()
	})

	Describe("Detect", func() {
		It("should return the detected language", func() {
			h.Detect(rec, httptest.NewRequest(http.MethodGet, "/v1/detect?q=hello+world", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(det.text).To(Equal("hello world"))
			Expect(decode(rec)).To(Equal(map[string]any{"language": "en", "name": "English"}))
		})

		It("should require text", func() {
			h.Detect(rec, httptest.NewRequest(http.MethodGet, "/v1/detect", nil))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map exhaustion to 503 with Retry-After", func() {
			det.err = &translate.NoAvailableError{Wait: 1500 * time.Millisecond}

			h.Detect(rec, httptest.NewRequest(http.MethodGet, "/v1/detect?q=x", nil))

			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(rec.Header().Get("Retry-After")).To(Equal("2"))
			body := decode(rec)
			Expect(body["retry_after_ms"]).To(BeNumerically("==", 1500))
			Expect(body["error"]).To(ContainSubstring("no available service"))
		})

		It("should map other errors to 500", func() {
			det.err = errors.New("boom")
			h.Detect(rec, httptest.NewRequest(http.MethodGet, "/v1/detect?q=x", nil))
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Translate", func() {
		It("should default the source to auto", func() {
			h.Translate(rec, httptest.NewRequest(http.MethodGet, "/v1/translate?q=hi&tl=zh-CN", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(tr.source).To(Equal(translate.Auto))
			Expect(tr.target).To(Equal(translate.ChineseSimplified))
			Expect(decode(rec)).To(Equal(map[string]any{"text": "[hi]", "source": "en", "target": "zh-CN"}))
		})

		DescribeTable("should reject bad input",
			func(target string) {
				h.Translate(rec, httptest.NewRequest(http.MethodGet, target, nil))
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("missing text", "/v1/translate?tl=en"),
			Entry("missing target", "/v1/translate?q=hi"),
			Entry("unknown target", "/v1/translate?q=hi&tl=xx"),
			Entry("unknown source", "/v1/translate?q=hi&sl=xx&tl=en"),
		)

		DescribeTable("should map validation errors to 400",
			func(err error) {
				tr.err = err
				h.Translate(rec, httptest.NewRequest(http.MethodGet, "/v1/translate?q=hi&sl=en&tl=en", nil))
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("target equals source", translate.ErrTargetEqualsSource),
			Entry("target is auto", translate.ErrTargetIsAuto),
		)

		It("should map exhaustion to 503", func() {
			tr.err = &translate.NoAvailableError{Wait: 60 * time.Second}
			h.Translate(rec, httptest.NewRequest(http.MethodGet, "/v1/translate?q=hi&tl=fr", nil))

			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(rec.Header().Get("Retry-After")).To(Equal("60"))
		})
	})

	Describe("Backends", func() {
		It("should list both registries", func() {
			h.Backends(rec, httptest.NewRequest(http.MethodGet, "/v1/backends", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"BLOCKED(1)"`))
			Expect(rec.Body.String()).To(ContainSubstring(translate.TranslateExtensions))
		})
	})

	Describe("Health", func() {
		It("should report ok", func() {
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode(rec)).To(HaveKeyWithValue("status", "ok"))
		})
	})
})
