package config

const (
	// Logical screen, matching the handheld's hires mode.
	ScreenWidth  = 320
	ScreenHeight = 240
	WindowScale  = 3

	WindowTitle = "Cloth - arrows / IJKL drag corners, T: heat-map, R: reset, H: help, Esc/Q: quit"

	// Audio
	SampleRate   = 44100
	SnapFreq     = 1800.0
	SnapDecay    = 0.012 // seconds
	SnapVolume   = 0.35
	MaxSnapVoice = 16

	// Default location of the tuning file, overridden by CLOTH_ENV.
	EnvFile = ".env"
)

const Help = `Left corner:   arrow keys
Right corner:  I (up), K (down), J (left), L (right)

T   toggle strain heat-map
M   mute snapping sounds
R   reset the cloth
H   this help
Esc / Q   quit`
