package polynomial

import "fmt"

// NegativeDegreeError is returned when a term is constructed with a negative degree
type NegativeDegreeError struct {
	Degree int
}

func (e *NegativeDegreeError) Error() string {
	return fmt.Sprintf("degree cannot be negative: %d", e.Degree)
}

// DegreeOverflowError is returned when a term or product would exceed MaxDegree
type DegreeOverflowError struct {
	Degree int64
}

func (e *DegreeOverflowError) Error() string {
	return fmt.Sprintf("degree %d exceeds the maximum of %d", e.Degree, MaxDegree)
}

// FormatError is returned when text does not match the polynomial grammar
type FormatError struct {
	Input  string // the whole offending input
	Offset int    // byte offset where parsing failed
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q is not a valid polynomial: %s at offset %d", e.Input, e.Reason, e.Offset)
}
