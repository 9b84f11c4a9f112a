package metrics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/libtranslate/internal/health"
	"github.com/angeloszaimis/libtranslate/internal/metrics"
)

var _ = Describe("Metrics", func() {
	var m *metrics.Metrics

	BeforeEach(func() {
		m = metrics.NewMetrics()
	})

	Describe("RecordSelection", func() {
		It("should track backends separately", func() {
			m.RecordSelection("detector", "a")
			m.RecordSelection("detector", "a")
			m.RecordSelection("detector", "b")

			snap := m.Snapshot()
			Expect(snap.Services["detector"].Backends["a"].Selections).To(Equal(int64(2)))
			Expect(snap.Services["detector"].Backends["b"].Selections).To(Equal(int64(1)))
		})
	})

	Describe("RecordCall", func() {
		It("should split successes and failures", func() {
			m.RecordCall("translator", "a", 100*time.Millisecond, true)
			m.RecordCall("translator", "a", 200*time.Millisecond, false)
			m.RecordCall("translator", "a", 300*time.Millisecond, true)

			snap := m.Snapshot()
			bm := snap.Services["translator"].Backends["a"]
			Expect(snap.TotalCalls).To(Equal(int64(3)))
			Expect(bm.Successes).To(Equal(int64(2)))
			Expect(bm.Failures).To(Equal(int64(1)))
			Expect(bm.AvgResponse).To(Equal(200 * time.Millisecond))
		})

		It("should calculate percentiles", func() {
			for i := 1; i <= 100; i++ {
				m.RecordCall("translator", "a", time.Duration(i)*time.Millisecond, true)
			}

			bm := m.Snapshot().Services["translator"].Backends["a"]
			Expect(bm.P50Response).To(BeNumerically("~", 50*time.Millisecond, 2*time.Millisecond))
			Expect(bm.P95Response).To(BeNumerically("~", 95*time.Millisecond, 2*time.Millisecond))
			Expect(bm.P99Response).To(BeNumerically("~", 99*time.Millisecond, 2*time.Millisecond))
		})

		It("should keep a bounded window of samples", func() {
			for i := 0; i < 1500; i++ {
				m.RecordCall("translator", "a", time.Second, true)
			}
			m.RecordCall("translator", "a", time.Second, true)

			bm := m.Snapshot().Services["translator"].Backends["a"]
			Expect(bm.Successes).To(Equal(int64(1501)))
			Expect(bm.AvgResponse).To(Equal(time.Second))
		})
	})

	Describe("UpdateStatus", func() {
		It("should report the last status", func() {
			m.UpdateStatus("detector", "a", health.Retrying(3, time.Now()))
			m.UpdateStatus("detector", "a", health.Blocked(2, time.Now()))

			Expect(m.Snapshot().Services["detector"].Backends["a"].Status).To(Equal("BLOCKED(2)"))
		})
	})

	Describe("UpdateWeight", func() {
		It("should record the weight and status", func() {
			m.UpdateWeight("detector", "a", 0, health.Blocked(1, time.Now()))

			bm := m.Snapshot().Services["detector"].Backends["a"]
			Expect(bm.Weight).To(BeZero())
			Expect(bm.Status).To(Equal("BLOCKED(1)"))
		})
	})

	Describe("Snapshot", func() {
		It("should be empty for a new instance", func() {
			snap := m.Snapshot()
			Expect(snap.TotalCalls).To(BeZero())
			Expect(snap.Services).To(BeEmpty())
			Expect(snap.Uptime).To(BeNumerically(">=", 0))
		})

		It("should report exhaustion without backends", func() {
			m.RecordExhausted("translator")

			svc := m.Snapshot().Services["translator"]
			Expect(svc.Exhausted).To(Equal(int64(1)))
			Expect(svc.Backends).To(BeEmpty())
		})
	})
})
