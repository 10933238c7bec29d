package config

// speedCurve is the tick pacing a preset imposes.
type speedCurve struct {
	initial int
	minimum int
	step    int
}

var presetCurves = map[DifficultyPreset]speedCurve{
	DifficultyEasy: {initial: 250, minimum: 80, step: 4},
	DifficultyHard: {initial: 150, minimum: MinSpeedFloor, step: 6},
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed keeps the initial speed for the whole game.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Speed.Step = 0
		return
	case DifficultyNormal, "":
		return
	}

	curve, ok := presetCurves[preset]
	if !ok {
		return
	}
	cfg.Speed.Initial = curve.initial
	cfg.Speed.Minimum = curve.minimum
	cfg.Speed.Step = curve.step
}
