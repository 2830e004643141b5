package core

// RuntimeConfig contains configuration passed to a viewer session.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	FPS      int    // Playback ticks per second
	Seed     string // Seed material; empty means a fresh random seed
	Order    int    // Number of shuffle iterations to generate
	Autoplay bool   // Start playing immediately
	ShowIDs  bool   // Label dominoes with the last digit of their id
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FPS:      4,
		Seed:     "",
		Order:    10,
		Autoplay: true,
	}
}

// PlaybackState describes where a viewer is within a run.
type PlaybackState struct {
	Frame   int  // Index of the displayed iteration
	Frames  int  // Number of iterations in the run
	Playing bool // Whether autoplay is advancing frames
}

// AtEnd reports whether the last frame is displayed.
func (p PlaybackState) AtEnd() bool {
	return p.Frames == 0 || p.Frame >= p.Frames-1
}
