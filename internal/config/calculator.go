package config

type Calculator struct {
	FeeRate         float64   `env:"BARGAIN_FEE_RATE" envDefault:"0.02"`
	TargetProfits   []float64 `env:"BARGAIN_TARGET_PROFITS" envDefault:"5,10,15,20,25,30,50,75,100"`
	HighThreshold   float64   `env:"BARGAIN_HIGH_THRESHOLD" envDefault:"85"`
	MediumThreshold float64   `env:"BARGAIN_MEDIUM_THRESHOLD" envDefault:"80"`
}
