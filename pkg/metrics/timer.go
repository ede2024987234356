package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// VecTimer is a helper type to time functions.
// It is similar to prometheus.Timer, but takes a prometheus.ObserverVec,
// and can add labels to it when the VecTimer is observed.
// A nil ObserverVec is allowed; the timer then only measures.
// Use NewVecTimer to create new instances.
type VecTimer struct {
	begin time.Time
	vec   prometheus.ObserverVec
}

// NewVecTimer creates a new VecTimer. The provided ObserverVec is used to
// observe a duration in seconds:
//    func TimeMe() {
//        timer := NewVecTimer(myHistogramVec)
//        // Do actual work.
//        timer.ObserveWithLabelValues("label1", "label2")
//    }
func NewVecTimer(v prometheus.ObserverVec) *VecTimer {
	return &VecTimer{
		begin: time.Now(),
		vec:   v,
	}
}

// ObserveWithLabelValues records the duration passed since the VecTimer was
// created in the Observer derived from the construction-time ObserverVec and
// the given label values. The observed duration is also returned.
func (t *VecTimer) ObserveWithLabelValues(labels ...string) time.Duration {
	d := time.Since(t.begin)
	if t.vec != nil {
		t.vec.WithLabelValues(labels...).Observe(d.Seconds())
	}
	return d
}

// ObserveWith is ObserveWithLabelValues with a labels map.
func (t *VecTimer) ObserveWith(labels prometheus.Labels) time.Duration {
	d := time.Since(t.begin)
	if t.vec != nil {
		t.vec.With(labels).Observe(d.Seconds())
	}
	return d
}
