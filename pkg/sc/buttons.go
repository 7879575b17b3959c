package sc

// Bits of the primary flag word (frame bytes 2-3, little endian).
// 0x0001, 0x0002, 0x4000 and 0x8000 carry unknown state and stay
// unexposed.
const (
	ButtonRB         uint16 = 0x0004
	ButtonLB         uint16 = 0x0008
	ButtonY          uint16 = 0x0010
	ButtonB          uint16 = 0x0020
	ButtonX          uint16 = 0x0040
	ButtonA          uint16 = 0x0080
	ButtonSelect     uint16 = 0x0100
	ButtonSteam      uint16 = 0x0200
	ButtonStart      uint16 = 0x0400
	ButtonLGrip      uint16 = 0x0800
	ButtonRGrip      uint16 = 0x1000
	ButtonStickClick uint16 = 0x2000
)

// Digital trigger bits (frame byte 8), set when a trigger is pulled all
// the way in.
const (
	TriggerRightFull byte = 0x01
	TriggerLeftFull  byte = 0x02
)

// Trackpad bits (frame byte 10). The click bit is shared between the
// two pads; attribution follows the touch flags.
const (
	PadClick      byte = 0x04
	PadLeftTouch  byte = 0x08
	PadRightTouch byte = 0x10
)

const (
	lpadClickBits = PadLeftTouch | PadClick
	rpadClickBits = PadRightTouch | PadClick
)

// Buttons is the digital state carried by a single frame.
type Buttons struct {
	A bool `json:"a"`
	B bool `json:"b"`
	X bool `json:"x"`
	Y bool `json:"y"`

	LB bool `json:"lb"`
	RB bool `json:"rb"`
	LT bool `json:"lt"`
	RT bool `json:"rt"`

	LGrip bool `json:"lgrip"`
	RGrip bool `json:"rgrip"`

	Start  bool `json:"start"`
	Select bool `json:"select"`
	Steam  bool `json:"steam"`

	LPadClick  bool `json:"lpad_click"`
	RPadClick  bool `json:"rpad_click"`
	StickClick bool `json:"stick_click"`
}
