package frame

import (
	"log/slog"

	"softcube/math3d"
	"softcube/pipeline"
)

// Options holds every tunable of the frame cycle.
type Options struct {
	Width, Height int

	FovY       float32 // radians
	Near, Far  float32
	PitchLimit float32 // radians

	MouseSensitivity float32 // radians per pixel
	MoveSpeed        float32 // units per second
	SpinRate         float32 // radians per second
	TiltRatio        float32 // X rotation as a fraction of the Y rotation

	Start math3d.Vec3

	Light      math3d.Vec3 // towards the light, normalized on use
	Ambient    float32
	Background uint32

	// Shader overrides Lambert(Ambient) when set.
	Shader pipeline.Shader

	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:            1280,
		Height:           720,
		FovY:             1.0472,
		Near:             0.1,
		Far:              100,
		PitchLimit:       1.5,
		MouseSensitivity: 0.002,
		MoveSpeed:        3,
		SpinRate:         0.8,
		TiltRatio:        0.4,
		Start:            math3d.V3(0, 0, 5),
		Light:            math3d.V3(1, 2, 3),
		Ambient:          pipeline.DefaultAmbient,
		Background:       0xFF1A1A2E,
	}
}
