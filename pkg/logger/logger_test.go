package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/libtranslate/pkg/logger"
)

var _ = Describe("Logger", func() {
	Describe("ParseLevel", func() {
		DescribeTable("level names",
			func(name string, expected slog.Level) {
				Expect(logger.ParseLevel(name)).To(Equal(expected))
			},
			Entry("debug", "debug", slog.LevelDebug),
			Entry("info", "info", slog.LevelInfo),
			Entry("warn", "WARN", slog.LevelWarn),
			Entry("error", "error", slog.LevelError),
			Entry("invalid defaults to info", "invalid", slog.LevelInfo),
		)
	})

	Describe("New", func() {
		It("should respect the level", func() {
			log := logger.New("warn", false, "dev")

			Expect(log.Enabled(context.Background(), slog.LevelInfo)).To(BeFalse())
			Expect(log.Enabled(context.Background(), slog.LevelWarn)).To(BeTrue())
		})

		It("should support addSource option", func() {
			Expect(logger.New("info", true, "dev")).NotTo(BeNil())
		})
	})

	Describe("NewWithOptions", func() {
		It("should follow a level var after construction", func() {
			var buf bytes.Buffer
			lv := new(slog.LevelVar)
			log := logger.NewWithOptions(logger.Options{Level: "error", LevelVar: lv, Environment: "dev", Output: &buf})

			Expect(lv.Level()).To(Equal(slog.LevelError))
			log.Info("hidden")
			Expect(buf.Len()).To(BeZero())

			lv.Set(slog.LevelDebug)
			log.Info("shown")
			Expect(buf.String()).To(ContainSubstring("msg=shown"))
		})

		It("should write text records tagged with the environment in dev", func() {
			var buf bytes.Buffer
			log := logger.NewWithOptions(logger.Options{Level: "info", Environment: "dev", Output: &buf})

			log.Info("backend escalated", "backend", "google.MobileTranslate")

			Expect(buf.String()).To(ContainSubstring("environment=dev"))
			Expect(buf.String()).To(ContainSubstring("backend=google.MobileTranslate"))
		})

		It("should write JSON records in prod", func() {
			var buf bytes.Buffer
			log := logger.NewWithOptions(logger.Options{Level: "info", Environment: "prod", Output: &buf})

			log.Info("started")

			var record map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &record)).To(Succeed())
			Expect(record).To(HaveKeyWithValue("environment", "prod"))
			Expect(record).To(HaveKeyWithValue("msg", "started"))
		})
	})

	Describe("Discard", func() {
		It("should accept records without output", func() {
			log := logger.Discard()
			Expect(func() { log.Error("ignored") }).NotTo(Panic())
		})
	})
})
