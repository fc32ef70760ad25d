package project

const (
	Name    = "polycalc"
	Version = "0.1.0"
)
