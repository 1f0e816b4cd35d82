package vga

// BIOS is the video services interrupt (int 10h).
type BIOS interface {
	SetMode(m Mode)
	HideCursor()
}

// Console is the text-mode console that keeps printing into a back buffer
// while graphics own the screen.
type Console interface {
	SwapBuffers()
}

// Emulator stands in for the real BIOS and console when running hosted.
type Emulator struct {
	Mode         Mode
	CursorHidden bool
	ModeSets     int
	Swaps        int
}

func NewEmulator() *Emulator {
	return &Emulator{Mode: ModeText}
}

func (e *Emulator) SetMode(m Mode) {
	e.Mode = m
	e.ModeSets++
	e.CursorHidden = false
}

func (e *Emulator) HideCursor() { e.CursorHidden = true }

func (e *Emulator) SwapBuffers() { e.Swaps++ }
