package midi

import "testing"

func TestBufferMaintainsSampleOffsetOrder(t *testing.T) {
	b := NewBuffer(8)
	b.Push(Event{Kind: KindNoteOn, SampleOffset: 50})
	b.Push(Event{Kind: KindNoteOn, SampleOffset: 10})
	b.Push(Event{Kind: KindNoteOn, SampleOffset: 30})

	offsets := make([]int32, 0, 3)
	for _, e := range b.Events() {
		offsets = append(offsets, e.SampleOffset)
	}
	want := []int32{10, 30, 50}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("got %v, want %v", offsets, want)
		}
	}
}

func TestBufferStableOrderAtEqualOffset(t *testing.T) {
	b := NewBuffer(8)
	b.Push(Event{Kind: KindControlChange, SampleOffset: 10, Controller: 1})
	b.Push(Event{Kind: KindControlChange, SampleOffset: 10, Controller: 2})
	b.Push(Event{Kind: KindControlChange, SampleOffset: 10, Controller: 3})

	events := b.Events()
	for i, want := range []uint8{1, 2, 3} {
		if events[i].Controller != want {
			t.Fatalf("index %d: got controller %d, want %d (push order must be preserved for ties)", i, events[i].Controller, want)
		}
	}
}

func TestBufferOverflowSetsFlagAndDropsEvent(t *testing.T) {
	b := NewBuffer(2)
	if !b.Push(Event{SampleOffset: 1}) {
		t.Fatal("first push should succeed")
	}
	if !b.Push(Event{SampleOffset: 2}) {
		t.Fatal("second push should succeed")
	}
	if b.Push(Event{SampleOffset: 3}) {
		t.Fatal("third push should fail: buffer at capacity")
	}
	if !b.Overflowed() {
		t.Fatal("overflow flag should be set")
	}
	if b.Len() != 2 {
		t.Fatalf("got len %d, want 2", b.Len())
	}
}

func TestBufferClearResetsWithoutReallocating(t *testing.T) {
	b := NewBuffer(4)
	b.Push(Event{SampleOffset: 1})
	b.Push(Event{SampleOffset: 2})
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("got len %d after Clear, want 0", b.Len())
	}
	if b.Overflowed() {
		t.Fatal("Clear should reset the overflow flag")
	}
	if cap(b.events) != 4 {
		t.Fatalf("Clear must not shrink backing capacity, got cap %d", cap(b.events))
	}
}

func TestBufferInRangeSelectsHalfOpenInterval(t *testing.T) {
	b := NewBuffer(8)
	for _, off := range []int32{0, 10, 20, 30, 40} {
		b.Push(Event{SampleOffset: off})
	}
	got := b.InRange(10, 30)
	if len(got) != 2 {
		t.Fatalf("got %d events in [10,30), want 2", len(got))
	}
	if got[0].SampleOffset != 10 || got[1].SampleOffset != 20 {
		t.Fatalf("got offsets %d,%d, want 10,20", got[0].SampleOffset, got[1].SampleOffset)
	}
}

func TestSysExPoolAllocateReturnsStableSlice(t *testing.T) {
	p := NewSysExOutputPool(2, 64)
	data := []byte{0xF0, 0x41, 0x10, 0xF7}

	got, ok := p.Allocate(data)
	if !ok {
		t.Fatal("allocate should succeed")
	}
	if len(got) != len(data) {
		t.Fatalf("got len %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d: got %x want %x", i, got[i], data[i])
		}
	}
}

func TestSysExPoolOverflow(t *testing.T) {
	p := NewSysExOutputPool(1, 64)
	data := []byte{0xF0, 0xF7}

	if _, ok := p.Allocate(data); !ok {
		t.Fatal("first allocate should succeed")
	}
	if p.Overflowed() {
		t.Fatal("should not be overflowed yet")
	}
	if _, ok := p.Allocate(data); ok {
		t.Fatal("second allocate should fail: pool exhausted")
	}
	if !p.Overflowed() {
		t.Fatal("overflow flag should now be set")
	}
}

func TestSysExPoolClearResetsUsageNotFallback(t *testing.T) {
	p := NewSysExOutputPool(1, 64)
	p.EnableHeapFallback(true)
	data := []byte{0xF0, 0xF7}

	p.Allocate(data)
	p.Allocate(data) // overflow, captured by fallback
	if !p.HasFallback() {
		t.Fatal("expected a fallback message after overflow with fallback enabled")
	}

	p.Clear()
	if p.Used() != 0 {
		t.Fatalf("got used %d after Clear, want 0", p.Used())
	}
	if !p.HasFallback() {
		t.Fatal("Clear must not drain the fallback list")
	}

	msgs := p.TakeFallback()
	if len(msgs) != 1 {
		t.Fatalf("got %d fallback messages, want 1", len(msgs))
	}
	if p.HasFallback() {
		t.Fatal("TakeFallback should drain the list")
	}
}

func TestSysExPoolTruncatesOversizedMessage(t *testing.T) {
	p := NewSysExOutputPool(1, 4)
	data := []byte{0xF0, 0x41, 0x10, 0x42, 0x00, 0xF7}

	got, ok := p.Allocate(data)
	if !ok {
		t.Fatal("allocate should succeed")
	}
	if len(got) != 4 {
		t.Fatalf("got len %d, want 4 (truncated to buffer size)", len(got))
	}
}

func TestCCTableChannelSpecificBindingTakesPrecedence(t *testing.T) {
	table := NewCCTable()
	table.Bind(OmniChannel, CCModWheel, 100, 1.0)
	table.Bind(0, CCModWheel, 200, 1.0)

	id, _, ok := table.Lookup(0, CCModWheel, 64)
	if !ok || id != 200 {
		t.Fatalf("got id=%d ok=%v, want id=200 (channel-specific should win)", id, ok)
	}

	id, _, ok = table.Lookup(1, CCModWheel, 64)
	if !ok || id != 100 {
		t.Fatalf("got id=%d ok=%v, want id=100 (omni fallback on other channels)", id, ok)
	}
}

func TestCCTableLookupScalesAndClamps(t *testing.T) {
	table := NewCCTable()
	table.Bind(0, CCVolume, 42, 2.0)

	_, normalized, ok := table.Lookup(0, CCVolume, 127)
	if !ok {
		t.Fatal("expected a binding")
	}
	if normalized != 1.0 {
		t.Fatalf("got %v, want 1.0 (scaled value must clamp to 1)", normalized)
	}
}

func TestCCTableUnboundLookupFails(t *testing.T) {
	table := NewCCTable()
	if _, _, ok := table.Lookup(0, CCSustain, 127); ok {
		t.Fatal("lookup with no binding should fail")
	}
}

func TestNoteFrequencyRoundTrip(t *testing.T) {
	for _, note := range []uint8{21, 60, 69, 108} {
		freq := NoteToFrequency(note, 440)
		got := FrequencyToNote(freq, 440)
		if got != note {
			t.Fatalf("note %d: round trip got %d", note, got)
		}
	}
}

func TestNoteNumberToName(t *testing.T) {
	if got := NoteNumberToName(69); got != "A4" {
		t.Fatalf("got %s, want A4", got)
	}
	if got := NoteNumberToName(60); got != "C4" {
		t.Fatalf("got %s, want C4", got)
	}
}
