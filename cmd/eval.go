/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/rationalfe/InputParameters"
	"github.com/notargets/rationalfe/element"
	"github.com/notargets/rationalfe/rational"
	"github.com/notargets/rationalfe/utils"
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Tabulate a rational basis over sample points of the reference element",
	Long: `
Reads a YAML case file describing an element (dimension, polynomial order,
node weights) and prints the rational basis values and derivatives at
sample points, with a partition of unity check,

rationalfe eval -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		me := &ModelEval{}
		if me.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		me.Profile, _ = cmd.Flags().GetBool("profile")
		ep := processEvalInput(me)
		RunEval(me, ep)
	},
}

type ModelEval struct {
	InputFile string
	Profile   bool
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("inputFile", "I", "", "YAML case file describing the element and weights")
	EvalCmd.Flags().Bool("profile", false, "write a CPU profile of the evaluation")
}

func processEvalInput(me *ModelEval) (ep *InputParameters.EvalParameters) {
	if len(me.InputFile) == 0 {
		fmt.Printf("error: must supply a case file (-I, --inputFile)\n")
		exampleFile := `
########################################
Title: "Quadratic arc weights"
Dimension: 1
Family: RationalBernstein
PolynomialOrder: 2
Weights: [1, 2, 1]
NumSamples: 11
########################################
`
		fmt.Printf("Example case file:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(me.InputFile)
	if err != nil {
		fmt.Printf("error reading case file %s: %s\n", me.InputFile, err.Error())
		os.Exit(1)
	}
	ep = &InputParameters.EvalParameters{}
	if err = ep.Parse(data); err != nil {
		fmt.Printf("error parsing case file %s: %s\n", me.InputFile, err.Error())
		os.Exit(1)
	}
	return
}

func familyFromName(name string) (f rational.Family, err error) {
	switch name {
	case "RationalBernstein", "":
		f = rational.RationalBernstein
	default:
		err = fmt.Errorf("unknown basis family %q", name)
	}
	return
}

func RunEval(me *ModelEval, ep *InputParameters.EvalParameters) {
	if me.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ep.Print()
	family, err := familyFromName(ep.Family)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	engine, err := rational.New(ep.Dimension, family)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var e element.Element
	switch ep.Dimension {
	case 1:
		e, err = element.NewLine(ep.Weights, ep.PLevel)
	case 3:
		e, err = element.NewBrick(ep.Weights, ep.PLevel)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	R := utils.NewVector(ep.NumSamples, utils.Linspace(-1, 1, ep.NumSamples))
	samplePoint := func(r float64) (p element.Point) {
		// 3D elements are sampled along the reference cube diagonal
		p[element.Xi] = r
		if ep.Dimension == 3 {
			p[element.Eta] = r
			p[element.Zeta] = r
		}
		return
	}
	var (
		nNodes = e.NodeCount()
		V      = utils.NewMatrix(R.Len(), nNodes)
		Vr     = utils.NewMatrix(R.Len(), nNodes)
	)
	for i := 0; i < R.Len(); i++ {
		p := samplePoint(R.AtVec(i))
		for j := 0; j < nNodes; j++ {
			val, err := engine.Value(e, ep.PolynomialOrder, j, p, ep.IncludePLevel)
			if err != nil {
				fmt.Printf("error at sample %d, shape %d: %s\n", i, j, err.Error())
				os.Exit(1)
			}
			dval, err := engine.FirstDeriv(e, ep.PolynomialOrder, j, element.Xi, p, ep.IncludePLevel)
			if err != nil {
				fmt.Printf("error at sample %d, shape %d: %s\n", i, j, err.Error())
				os.Exit(1)
			}
			V.Set(i, j, val)
			Vr.Set(i, j, dval)
		}
	}
	V.Print("Rational basis values (rows = sample points, cols = shape functions)")
	Vr.Print("Rational basis xi-derivatives")
	var maxDev float64
	for _, rowSum := range V.SumRows().DataP {
		if dev := math.Abs(rowSum - 1); dev > maxDev {
			maxDev = dev
		}
	}
	fmt.Printf("Max partition of unity deviation: %8.2e\n", maxDev)
}
