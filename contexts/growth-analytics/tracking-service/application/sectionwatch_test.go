package application

import (
	"context"
	"testing"

	"marquee/contexts/growth-analytics/tracking-service/ports"
)

func TestSectionViewReportedOncePerSection(t *testing.T) {
	sink := newCaptureSink()
	service := Service{Sink: sink}
	tracker := service.NewTracker("modern", ports.ClientContext{})
	watch := Arm(0.5)

	if !watch.Observe(context.Background(), tracker, "hero", 0.7) {
		t.Fatal("expected first qualifying observation to report")
	}
	if watch.Observe(context.Background(), tracker, "hero", 0.9) {
		t.Fatal("expected second observation of the same section to be ignored")
	}

	event := sink.next(t)
	if event.EventName != ports.EventSectionView || event.Metadata["section_name"] != "hero" {
		t.Fatalf("expected one hero section_view, got %s %v", event.EventName, event.Metadata)
	}
	select {
	case extra := <-sink.ch:
		t.Fatalf("expected exactly one section_view, got extra %s", extra.EventName)
	default:
	}
}

func TestSectionBelowThresholdNotReported(t *testing.T) {
	service := Service{Sink: newCaptureSink()}
	tracker := service.NewTracker("modern", ports.ClientContext{})
	watch := Arm(0.5)

	if watch.Observe(context.Background(), tracker, "pricing", 0.49) {
		t.Fatal("expected sub-threshold observation to be ignored")
	}
	if !watch.Observe(context.Background(), tracker, "pricing", 0.5) {
		t.Fatal("expected observation at the threshold to report")
	}
}

func TestDistinctSectionsReportIndependently(t *testing.T) {
	sink := newCaptureSink()
	service := Service{Sink: sink}
	tracker := service.NewTracker("modern", ports.ClientContext{})
	watch := Arm(0.5)

	watch.Observe(context.Background(), tracker, "hero", 1)
	watch.Observe(context.Background(), tracker, "features", 1)

	first := sink.next(t)
	second := sink.next(t)
	sections := map[any]bool{
		first.Metadata["section_name"]:  true,
		second.Metadata["section_name"]: true,
	}
	if !sections["hero"] || !sections["features"] {
		t.Fatalf("expected hero and features reported, got %v", sections)
	}
}

func TestDisposedWatchDropsObservations(t *testing.T) {
	service := Service{Sink: newCaptureSink()}
	tracker := service.NewTracker("modern", ports.ClientContext{})
	watch := Arm(0.5)

	watch.Dispose()
	if watch.Observe(context.Background(), tracker, "hero", 1) {
		t.Fatal("expected disposed watch to drop observations")
	}
}

func TestWatchesReusePerSession(t *testing.T) {
	watches := NewWatches(0.5)
	if watches.For("s1") != watches.For("s1") {
		t.Fatal("expected the same watch for one session")
	}
	if watches.For("s1") == watches.For("s2") {
		t.Fatal("expected distinct watches for distinct sessions")
	}
}

func TestWatchesDropDisposes(t *testing.T) {
	service := Service{Sink: newCaptureSink()}
	tracker := service.NewTracker("modern", ports.ClientContext{})

	watches := NewWatches(0.5)
	watch := watches.For("s1")
	watches.Drop("s1")
	if watch.Observe(context.Background(), tracker, "hero", 1) {
		t.Fatal("expected dropped session watch to be disposed")
	}
}
