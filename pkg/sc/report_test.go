package sc

import (
	"encoding/binary"
	"errors"
	"testing"
)

// frame returns a zeroed input report with mut applied.
func frame(mut func(f []byte)) []byte {
	f := make([]byte, FrameLen)
	f[0] = InputReportID
	if mut != nil {
		mut(f)
	}
	return f
}

func mustDecode(t *testing.T, f []byte) InputSnapshot {
	t.Helper()
	s, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return s
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 32, 63, 65, 128} {
		s, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("len %d: got err %v, want ErrInvalidSize", n, err)
		}
		if s != (InputSnapshot{}) {
			t.Errorf("len %d: snapshot not zero on error: %+v", n, s)
		}
	}
}

func TestDecodeZeroFrame(t *testing.T) {
	// All zero, including byte 0: the report identifier is not
	// validated, and a blank frame decodes to the neutral state.
	s := mustDecode(t, make([]byte, FrameLen))
	if s != (InputSnapshot{}) {
		t.Errorf("zero frame decoded non-neutral: %+v", s)
	}
}

func TestDecodeIgnoresReportID(t *testing.T) {
	for _, id := range []byte{0x00, 0x01, 0xff} {
		f := frame(func(f []byte) {
			f[0] = id
			binary.LittleEndian.PutUint16(f[offFlags:], ButtonA)
		})
		s := mustDecode(t, f)
		if !s.Buttons.A {
			t.Errorf("report id %#02x: button lost", id)
		}
	}
}

func TestDecodeButtonWord(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		want Buttons
	}{
		{"rb", ButtonRB, Buttons{RB: true}},
		{"lb", ButtonLB, Buttons{LB: true}},
		{"y", ButtonY, Buttons{Y: true}},
		{"b", ButtonB, Buttons{B: true}},
		{"x", ButtonX, Buttons{X: true}},
		{"a", ButtonA, Buttons{A: true}},
		{"select", ButtonSelect, Buttons{Select: true}},
		{"steam", ButtonSteam, Buttons{Steam: true}},
		{"start", ButtonStart, Buttons{Start: true}},
		{"lgrip", ButtonLGrip, Buttons{LGrip: true}},
		{"rgrip", ButtonRGrip, Buttons{RGrip: true}},
		{"stick_click", ButtonStickClick, Buttons{StickClick: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frame(func(f []byte) {
				binary.LittleEndian.PutUint16(f[offFlags:], tt.mask)
			})
			s := mustDecode(t, f)
			if s.Buttons != tt.want {
				t.Errorf("mask %#04x: got %+v, want %+v", tt.mask, s.Buttons, tt.want)
			}
		})
	}
}

func TestDecodeUnmappedFlagBits(t *testing.T) {
	f := frame(func(f []byte) {
		binary.LittleEndian.PutUint16(f[offFlags:], 0x0001|0x0002|0x4000|0x8000)
	})
	s := mustDecode(t, f)
	if s.Buttons != (Buttons{}) {
		t.Errorf("unmapped bits leaked into buttons: %+v", s.Buttons)
	}
}

func TestDecodeTriggers(t *testing.T) {
	f := frame(func(f []byte) {
		f[offTrigR] = 0x7f
		f[offTrigL] = 0xff
	})
	s := mustDecode(t, f)
	if s.Triggers != (Triggers{Left: 0xff, Right: 0x7f}) {
		t.Errorf("analog triggers: got %+v", s.Triggers)
	}

	tests := []struct {
		bits   byte
		lt, rt bool
	}{
		{TriggerRightFull, false, true},
		{TriggerLeftFull, true, false},
		{TriggerRightFull | TriggerLeftFull, true, true},
	}
	for _, tt := range tests {
		f := frame(func(f []byte) { f[offTrigBits] = tt.bits })
		s := mustDecode(t, f)
		if s.Buttons.LT != tt.lt || s.Buttons.RT != tt.rt {
			t.Errorf("trigger bits %#02x: lt=%v rt=%v, want lt=%v rt=%v",
				tt.bits, s.Buttons.LT, s.Buttons.RT, tt.lt, tt.rt)
		}
	}
}

func TestDecodeSequence(t *testing.T) {
	f := frame(func(f []byte) {
		binary.LittleEndian.PutUint32(f[offSequence:], 0xa1b2c3d4)
	})
	if s := mustDecode(t, f); s.Sequence != 0xa1b2c3d4 {
		t.Errorf("sequence: got %#08x", s.Sequence)
	}

	// Byte order pin: lowest byte first.
	f = frame(func(f []byte) {
		f[offSequence] = 0x01
		f[offSequence+3] = 0x80
	})
	if s := mustDecode(t, f); s.Sequence != 0x80000001 {
		t.Errorf("sequence byte order: got %#08x", s.Sequence)
	}
}

func TestDecodeStickAndLeftPadShareBytes(t *testing.T) {
	coords := func(f []byte) {
		x, y := int16(-1234), int16(5678)
		binary.LittleEndian.PutUint16(f[offPrimary:], uint16(x))
		binary.LittleEndian.PutUint16(f[offPrimary+2:], uint16(y))
	}

	// No left touch: the bytes are the stick.
	s := mustDecode(t, frame(coords))
	if s.Stick != (Stick{X: -1234, Y: 5678}) {
		t.Errorf("stick: got %+v", s.Stick)
	}
	if s.LeftPad != (Trackpad{}) {
		t.Errorf("left pad should be idle: %+v", s.LeftPad)
	}

	// Left touch: the same bytes are the pad contact and the stick
	// reads neutral.
	s = mustDecode(t, frame(func(f []byte) {
		coords(f)
		f[offPadBits] = PadLeftTouch
	}))
	if s.LeftPad != (Trackpad{X: -1234, Y: 5678, Touched: true}) {
		t.Errorf("left pad: got %+v", s.LeftPad)
	}
	if s.Stick != (Stick{}) {
		t.Errorf("stick should be neutral while pad is touched: %+v", s.Stick)
	}
}

func TestDecodeRightPad(t *testing.T) {
	f := frame(func(f []byte) {
		x, y := int16(-32768), int16(32767)
		binary.LittleEndian.PutUint16(f[offRightPad:], uint16(x))
		binary.LittleEndian.PutUint16(f[offRightPad+2:], uint16(y))
		f[offPadBits] = PadRightTouch
	})
	s := mustDecode(t, f)
	if s.RightPad != (Trackpad{X: -32768, Y: 32767, Touched: true}) {
		t.Errorf("right pad: got %+v", s.RightPad)
	}
}

func TestDecodePadClickAttribution(t *testing.T) {
	tests := []struct {
		name string
		bits byte
		lpad bool
		rpad bool
	}{
		{"click without touch", PadClick, false, false},
		{"left pad click", PadClick | PadLeftTouch, true, false},
		{"right pad click", PadClick | PadRightTouch, false, true},
		{"both touched", PadClick | PadLeftTouch | PadRightTouch, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frame(func(f []byte) { f[offPadBits] = tt.bits })
			s := mustDecode(t, f)
			if s.Buttons.LPadClick != tt.lpad || s.Buttons.RPadClick != tt.rpad {
				t.Errorf("bits %#02x: lpad=%v rpad=%v, want lpad=%v rpad=%v",
					tt.bits, s.Buttons.LPadClick, s.Buttons.RPadClick, tt.lpad, tt.rpad)
			}
		})
	}
}

func TestDecodeGyro(t *testing.T) {
	f := frame(func(f []byte) {
		pitch, yaw, roll := int16(-100), int16(200), int16(-32768)
		binary.LittleEndian.PutUint16(f[offGyro:], uint16(pitch))
		binary.LittleEndian.PutUint16(f[offGyro+2:], uint16(yaw))
		binary.LittleEndian.PutUint16(f[offGyro+4:], uint16(roll))
	})
	s := mustDecode(t, f)
	if s.Gyro != (Gyro{Pitch: -100, Yaw: 200, Roll: -32768}) {
		t.Errorf("gyro: got %+v", s.Gyro)
	}
}

func TestFormatReport(t *testing.T) {
	if got := FormatReport([]byte{0x01, 0xab, 0x00}); got != "01-ab-00" {
		t.Errorf("got %q", got)
	}
	if got := FormatReport(nil); got != "" {
		t.Errorf("empty report: got %q", got)
	}
}
