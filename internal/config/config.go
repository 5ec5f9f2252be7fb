package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 720
	WindowTitle  = "Senk — O: open manifest, Esc: close, Q: quit"

	TPS = 60

	// Preference key for the weather mode
	FxModeKey = "seng_fx_mode"
	AppDir    = "senk-showcase"
	PrefsFile = "prefs.toml"

	// Viewer
	ViewerSlides         = 4
	IndicatorDelay       = 1500 * time.Millisecond
	SwipeThreshold       = 0.18
	EdgeResistance       = 0.25
	ResizeEpsilon        = 0.5
	HoverRatioCeil       = 0.9999
	SlideSpringFrequency = 9.0
	SlideSpringDamping   = 1.0

	// Weather
	MaxFrameDelta = 33 * time.Millisecond
	MaxDPR        = 2.0
	FxLayers      = 3
	FxMinCount    = 60
	FxMaxCount    = 180
	FxAreaFactor  = 0.26

	RainWind     = 14
	RainSlant    = 0.17
	RainResetPad = 40
	RainSpeedMul = 0.5

	// Title typing
	TypeDelay  = 180 * time.Millisecond
	EraseDelay = 120 * time.Millisecond
	TypeHold   = 2700 * time.Millisecond

	// Page layout
	PagePadding   = 32
	BarHeight     = 56
	ScrolledAfter = 6
	CardGap       = 24
	CardWidth     = 300
	CardHeight    = 380
	SlideHeight   = 240
	WheelStep     = 48

	ButtonHeight = 32
	FxButtonW    = 64

	// Modal
	ModalWidth       = 720
	ModalHeight      = 560
	ModalSlideHeight = 320

	// Ambience
	AmbienceSampleRate = 44100
	MeterRingSize      = 4096
)

// Order link defaults, overridable from the manifest.
const (
	OrderUsername = "SanyaDur"
	OrderBaseURL  = "https://t.me/"
)
