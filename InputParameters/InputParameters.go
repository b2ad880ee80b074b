package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML evaluation case file
type EvalParameters struct {
	Title           string    `yaml:"Title"`
	Dimension       int       `yaml:"Dimension"` // 1 or 3
	Family          string    `yaml:"Family"`
	PolynomialOrder int       `yaml:"PolynomialOrder"`
	Weights         []float64 `yaml:"Weights"` // One per element node
	PLevel          int       `yaml:"PLevel"`
	IncludePLevel   bool      `yaml:"IncludePLevel"`
	NumSamples      int       `yaml:"NumSamples"` // Sample points per axis line
}

func (ep *EvalParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ep); err != nil {
		return err
	}
	if ep.Dimension != 1 && ep.Dimension != 3 {
		return fmt.Errorf("Dimension must be 1 or 3, got %d", ep.Dimension)
	}
	if ep.NumSamples == 0 {
		ep.NumSamples = 11
	}
	if len(ep.Family) == 0 {
		ep.Family = "RationalBernstein"
	}
	return nil
}

func (ep *EvalParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%d]\t\t\t= Dimension\n", ep.Dimension)
	fmt.Printf("[%s]\t= Family\n", ep.Family)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", ep.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t= PLevel\n", ep.PLevel)
	fmt.Printf("%v\t= Node Weights\n", ep.Weights)
}
