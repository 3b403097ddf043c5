package arena

const (
	MinBaseSize = 25.0
	MaxBaseSize = 60.0
	MaxSpeed    = 220.0 // initial velocity per axis is drawn from [-MaxSpeed, MaxSpeed)

	GiantScale  = 2.0
	MiniScale   = 2.0 / 3.0
	NormalScale = 1.0

	ColorMin        = 0.3 // base color channels are drawn from [ColorMin, 1)
	HueRate         = 0.15
	RainbowSat      = 0.6
	BackgroundRate  = 0.02
	BackgroundSat   = 0.1
	RainbowChance   = 0.25
	EvolutiveChance = 0.15

	EvolutiveLife   = 10.0
	EvolutiveCap    = 400.0
	EvolutiveGrowth = 1.30

	FragmentLife        = 10.0
	FragmentCount       = 8
	FragmentOffset      = 10.0
	FragmentSpeed       = 480.0
	FragmentFloorMargin = 15.0

	EventDuration = 20.0
	SpeedScale    = 4.0
	SlowedScale   = 0.35

	// timeEpsilon absorbs float drift when summing frame deltas, so 600
	// ticks of 1/60 s count as exactly 10 s.
	timeEpsilon = 1e-9
)
