package sc

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// FrameLen is the exact length of one input report.
const FrameLen = 64

// InputReportID is the identifier carried in byte 0 of input frames.
// Decode does not validate it.
const InputReportID byte = 0x01

// Frame offsets, all little endian. Bytes not listed here carry unknown
// state and are never exposed.
const (
	offFlags    = 2  // u16 primary flag word
	offSequence = 4  // u32 free-running counter
	offTrigBits = 8  // digital trigger flags
	offPadBits  = 10 // trackpad touch/click flags
	offTrigR    = 12 // u8 right trigger pull
	offTrigL    = 13 // u8 left trigger pull
	offPrimary  = 16 // 2x i16, stick or left pad while touched
	offRightPad = 20 // 2x i16
	offGyro     = 48 // 3x i16 pitch/yaw/roll
)

// Stick is the analog stick deflection, zero at rest.
type Stick struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
}

// Trackpad is one touchpad's contact position.
type Trackpad struct {
	X       int16 `json:"x"`
	Y       int16 `json:"y"`
	Touched bool  `json:"touched"`
}

// Triggers are the analog trigger pulls, 0 (released) to 255.
type Triggers struct {
	Left  uint8 `json:"left"`
	Right uint8 `json:"right"`
}

// Gyro is the angular rate snapshot from the IMU.
type Gyro struct {
	Pitch int16 `json:"pitch"`
	Yaw   int16 `json:"yaw"`
	Roll  int16 `json:"roll"`
}

// InputSnapshot is the decoded state of one input frame.
type InputSnapshot struct {
	Sequence uint32   `json:"sequence"`
	Buttons  Buttons  `json:"buttons"`
	Triggers Triggers `json:"triggers"`
	Stick    Stick    `json:"stick"`
	LeftPad  Trackpad `json:"left_pad"`
	RightPad Trackpad `json:"right_pad"`
	Gyro     Gyro     `json:"gyro"`
}

// Decode turns one raw input frame into a snapshot. The frame must be
// exactly FrameLen bytes; anything else fails with ErrInvalidSize before
// any field is read. Decoding is all-or-nothing and has no side effects.
//
// Bytes 16-19 are multiplexed by the firmware: while the left pad is
// touched they carry the pad contact, otherwise the stick deflection.
// The non-active source reads as zero.
func Decode(frame []byte) (InputSnapshot, error) {
	if len(frame) != FrameLen {
		return InputSnapshot{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(frame), FrameLen)
	}

	le := binary.LittleEndian
	flags := le.Uint16(frame[offFlags:])
	trig := frame[offTrigBits]
	pads := frame[offPadBits]

	s := InputSnapshot{
		Sequence: le.Uint32(frame[offSequence:]),
		Buttons: Buttons{
			A: flags&ButtonA != 0,
			B: flags&ButtonB != 0,
			X: flags&ButtonX != 0,
			Y: flags&ButtonY != 0,

			LB: flags&ButtonLB != 0,
			RB: flags&ButtonRB != 0,
			LT: trig&TriggerLeftFull != 0,
			RT: trig&TriggerRightFull != 0,

			LGrip: flags&ButtonLGrip != 0,
			RGrip: flags&ButtonRGrip != 0,

			Start:  flags&ButtonStart != 0,
			Select: flags&ButtonSelect != 0,
			Steam:  flags&ButtonSteam != 0,

			LPadClick:  pads&lpadClickBits == lpadClickBits,
			RPadClick:  pads&rpadClickBits == rpadClickBits,
			StickClick: flags&ButtonStickClick != 0,
		},
		Triggers: Triggers{
			Left:  frame[offTrigL],
			Right: frame[offTrigR],
		},
		RightPad: Trackpad{
			X:       int16(le.Uint16(frame[offRightPad:])),
			Y:       int16(le.Uint16(frame[offRightPad+2:])),
			Touched: pads&PadRightTouch != 0,
		},
		Gyro: Gyro{
			Pitch: int16(le.Uint16(frame[offGyro:])),
			Yaw:   int16(le.Uint16(frame[offGyro+2:])),
			Roll:  int16(le.Uint16(frame[offGyro+4:])),
		},
	}

	x := int16(le.Uint16(frame[offPrimary:]))
	y := int16(le.Uint16(frame[offPrimary+2:]))
	if pads&PadLeftTouch != 0 {
		s.LeftPad = Trackpad{X: x, Y: y, Touched: true}
	} else {
		s.Stick = Stick{X: x, Y: y}
	}

	return s, nil
}

// FormatReport renders a frame as dash-separated hex for diagnostics
// and raw logs.
func FormatReport(report []byte) string {
	var sb strings.Builder
	for i, b := range report {
		if i > 0 {
			sb.WriteString("-")
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
